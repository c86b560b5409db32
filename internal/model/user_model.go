package model

import "time"

type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    *string   `gorm:"type:varchar(100)"`
	LastName     *string   `gorm:"type:varchar(100)"`
	AvatarURL    *string   `gorm:"type:varchar(500)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}
