package entity

import "time"

type Post struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Published bool         `json:"published"`
	AuthorID  uint         `json:"authorId"`
	Author    *Author      `json:"author,omitempty"`
	Counts    *PostCounts  `json:"counts,omitempty"`
	Viewer    *ViewerFlags `json:"viewer,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type PostCounts struct {
	Likes    int64 `json:"likes"`
	Saves    int64 `json:"saves"`
	Shares   int64 `json:"shares"`
	Comments int64 `json:"comments"`
	Reads    int64 `json:"reads"`
}

// ViewerFlags tell the caller which engagements they already hold on a post.
type ViewerFlags struct {
	Liked     bool `json:"liked"`
	Saved     bool `json:"saved"`
	Shared    bool `json:"shared"`
	Read      bool `json:"read"`
	Commented bool `json:"commented"`
}

type PostUpdate struct {
	Title     *string
	Content   *string
	Published *bool
}

func (u PostUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Published == nil
}

type PostPage struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}
