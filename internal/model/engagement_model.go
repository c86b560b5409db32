package model

import "time"

// The four engagement tables share one shape. The typed models below only
// carry the schema (unique pair index, cascading foreign keys) for
// AutoMigrate; queries go through EngagementRow with an explicit table.

type EngagementRow struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint
	PostID    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

type LikeModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post;index"`
	User      UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post      PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LikeModel) TableName() string { return "likes" }

type SaveModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_saves_user_post"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_saves_user_post;index"`
	User      UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post      PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SaveModel) TableName() string { return "saves" }

type ShareModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_shares_user_post"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_shares_user_post;index"`
	User      UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post      PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShareModel) TableName() string { return "shares" }

type ReadModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reads_user_post"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_reads_user_post;index"`
	User      UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post      PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ReadModel) TableName() string { return "reads" }
