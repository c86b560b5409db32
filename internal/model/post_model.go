package model

import "time"

type PostModel struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	Published bool      `gorm:"not null;default:false;index"`
	AuthorID  uint      `gorm:"not null;index"`
	Author    UserModel `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (PostModel) TableName() string {
	return "posts"
}
