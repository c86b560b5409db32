package entity

type EngagementKind string

const (
	EngagementLike  EngagementKind = "like"
	EngagementSave  EngagementKind = "save"
	EngagementShare EngagementKind = "share"
	EngagementRead  EngagementKind = "read"
)

// EngagementKinds lists every kind in a stable order.
var EngagementKinds = []EngagementKind{EngagementLike, EngagementSave, EngagementShare, EngagementRead}

type EngagementMode int

const (
	// ModeToggle alternates between active and inactive on every call.
	ModeToggle EngagementMode = iota
	// ModeRecord creates the row once and never removes it.
	ModeRecord
)

func (k EngagementKind) Valid() bool {
	switch k {
	case EngagementLike, EngagementSave, EngagementShare, EngagementRead:
		return true
	}
	return false
}

func (k EngagementKind) Mode() EngagementMode {
	if k == EngagementLike || k == EngagementSave {
		return ModeToggle
	}
	return ModeRecord
}

// TouchOnRepeat is true for kinds whose timestamp is refreshed when recorded again.
func (k EngagementKind) TouchOnRepeat() bool {
	return k == EngagementRead
}

func (k EngagementKind) Table() string {
	switch k {
	case EngagementLike:
		return "likes"
	case EngagementSave:
		return "saves"
	case EngagementShare:
		return "shares"
	case EngagementRead:
		return "reads"
	}
	return ""
}

type EngagementResult struct {
	Active     bool  `json:"active"`
	TotalCount int64 `json:"totalCount"`
}
