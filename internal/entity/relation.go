package entity

// UserRelation names the list of posts a user engaged with in one way.
type UserRelation string

const (
	RelationLiked     UserRelation = "liked"
	RelationSaved     UserRelation = "saved"
	RelationShared    UserRelation = "shared"
	RelationCommented UserRelation = "commented"
	RelationRead      UserRelation = "read"
)

func (r UserRelation) Valid() bool {
	return r.Table() != ""
}

func (r UserRelation) Table() string {
	switch r {
	case RelationLiked:
		return "likes"
	case RelationSaved:
		return "saves"
	case RelationShared:
		return "shares"
	case RelationCommented:
		return "comments"
	case RelationRead:
		return "reads"
	}
	return ""
}
