package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel mirrors the 'students' table.
type StudentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Mnr       string    `gorm:"type:varchar(20);unique;not null"`
	FirstName string    `gorm:"type:varchar(50);not null"`
	LastName  string    `gorm:"type:varchar(50);not null"`
	CreatedOn time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}
