package model

import "time"

// RefreshTokenModel mirrors the 'refresh_tokens' table. The raw signed token
// string is stored and looked up by value; revocation flips a flag instead of
// deleting the row.
type RefreshTokenModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Token     string `gorm:"type:varchar(512);unique;not null"`
	AdminID   int64  `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	Revoked   bool `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
