package entity

import "strings"

type PostFilter struct {
	Published *bool
	AuthorID  *uint
}

type SearchFilter struct {
	Query     string
	Published *bool
	Author    string
	SortBy    SortField
	Order     SortOrder
}

type SortField string

const (
	SortCreatedAt SortField = "createdAt"
	SortUpdatedAt SortField = "updatedAt"
	SortTitle     SortField = "title"
)

// ParseSortField accepts only the sortable fields; empty means createdAt.
func ParseSortField(s string) (SortField, bool) {
	switch SortField(strings.TrimSpace(s)) {
	case "", SortCreatedAt:
		return SortCreatedAt, true
	case SortUpdatedAt:
		return SortUpdatedAt, true
	case SortTitle:
		return SortTitle, true
	}
	return "", false
}

func (f SortField) Column() string {
	switch f {
	case SortUpdatedAt:
		return "posts.updated_at"
	case SortTitle:
		return "posts.title"
	default:
		return "posts.created_at"
	}
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortOrder is case-insensitive; empty means desc.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderDesc:
		return OrderDesc, true
	case OrderAsc:
		return OrderAsc, true
	}
	return "", false
}

func (o SortOrder) Desc() bool {
	return o != OrderAsc
}
