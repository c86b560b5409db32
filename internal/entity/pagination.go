package entity

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Valid reports whether page is at least 1, limit lies in [1, MaxLimit]
// and the offset of page fits in an int.
func (p PageRequest) Valid() bool {
	if p.Page < 1 || p.Limit < 1 || p.Limit > MaxLimit {
		return false
	}
	return p.Page-1 <= math.MaxInt/p.Limit
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalPosts   int64 `json:"totalPosts"`
	PostsPerPage int   `json:"postsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

func NewPagination(req PageRequest, total int64) Pagination {
	totalPages := 0
	if req.Limit > 0 {
		totalPages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}
	return Pagination{
		CurrentPage:  req.Page,
		TotalPages:   totalPages,
		TotalPosts:   total,
		PostsPerPage: req.Limit,
		HasNextPage:  req.Page < totalPages,
		HasPrevPage:  req.Page > 1,
	}
}
