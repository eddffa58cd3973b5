package models

// Enum values are persisted as integers; never reorder them.

type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleAdmin:
		return "Admin"
	}
	return "Unknown"
}

type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
	GenderNotSpecified
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderNotSpecified:
		return "NotSpecified"
	}
	return "Unknown"
}

type ArticleStatus int

const (
	ArticleStatusDraft ArticleStatus = iota
	ArticleStatusPublished
	ArticleStatusScheduled
	ArticleStatusArchived
)

func (s ArticleStatus) String() string {
	switch s {
	case ArticleStatusDraft:
		return "Draft"
	case ArticleStatusPublished:
		return "Published"
	case ArticleStatusScheduled:
		return "Scheduled"
	case ArticleStatusArchived:
		return "Archived"
	}
	return "Unknown"
}
