package entity

import "time"

const MaxCommentLength = 5000

type Comment struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"postId"`
	UserID    uint      `json:"userId"`
	Content   string    `json:"content"`
	User      *Author   `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentList struct {
	Comments   []Comment `json:"comments"`
	TotalCount int64     `json:"totalCount"`
	Commented  bool      `json:"commented"`
}
