package access

// Principal is the acting identity for a request. A nil *Principal is an
// anonymous guest.
type Principal struct {
	UserID      uint
	Email       string
	Role        string // ADMIN, WORKER, CUSTOMER
	IsSuperUser bool
	Departments []string // department codes
}

// IsAdmin reports whether the principal has full admin capability.
// A superuser is an admin regardless of role.
func (p *Principal) IsAdmin() bool {
	return p != nil && (p.IsSuperUser || p.Role == "ADMIN")
}

// Action names a capability checked by Authorize.
type Action string

const (
	// ActionManageContent covers all admin CRUD: departments, users, videos,
	// playlists and quiz authoring.
	ActionManageContent Action = "manage_content"
	// ActionViewUnpublished lets a principal see unpublished content for
	// editing workflows.
	ActionViewUnpublished Action = "view_unpublished"
	// ActionWriteProgress lets a principal persist watch/quiz progress.
	ActionWriteProgress Action = "write_progress"
)

// Authorize is the single capability check used at every boundary instead of
// ad hoc role comparisons.
func Authorize(p *Principal, action Action) bool {
	switch action {
	case ActionManageContent, ActionViewUnpublished:
		return p.IsAdmin()
	case ActionWriteProgress:
		return p != nil
	default:
		return false
	}
}
