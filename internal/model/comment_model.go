package model

import "time"

type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	PostID    uint      `gorm:"not null;index"`
	Content   string    `gorm:"type:text;not null"`
	User      UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post      PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"index"`
}

func (CommentModel) TableName() string {
	return "comments"
}
