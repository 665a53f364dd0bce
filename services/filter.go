package services

import (
	"fmt"
	"strings"

	"lms/access"
)

// filterTarget tells the translator which tables carry a content type's rows
// and grants.
type filterTarget struct {
	table    string // content table, e.g. "videos"
	deptJoin string // department grant table, e.g. "video_accesses"
	deptFK   string // grant column referencing the content row
	userJoin string // per-user grant table, empty when unsupported
	userFK   string
}

var videoTarget = filterTarget{
	table:    "videos",
	deptJoin: "video_accesses",
	deptFK:   "video_id",
	userJoin: "video_user_accesses",
	userFK:   "video_id",
}

var playlistTarget = filterTarget{
	table:    "playlists",
	deptJoin: "playlist_accesses",
	deptFK:   "playlist_id",
}

// translateFilter turns a policy filter expression into a SQL condition over
// the target's table. The produced clauses use EXISTS sub-selects so the
// filtering happens in the store, not in memory.
func translateFilter(t filterTarget, e access.Expr) (string, []interface{}) {
	switch x := e.(type) {
	case access.MatchAll:
		return "1 = 1", nil
	case access.Published:
		return fmt.Sprintf("%s.is_published = ?", t.table), []interface{}{true}
	case access.Ungranted:
		cond := fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM %s WHERE %s.%s = %s.id AND %s.deleted_at IS NULL)",
			t.deptJoin, t.deptJoin, t.deptFK, t.table, t.deptJoin,
		)
		if t.userJoin != "" {
			cond += fmt.Sprintf(
				" AND NOT EXISTS (SELECT 1 FROM %s WHERE %s.%s = %s.id AND %s.deleted_at IS NULL)",
				t.userJoin, t.userJoin, t.userFK, t.table, t.userJoin,
			)
		}
		return cond, nil
	case access.DeptGranted:
		cond := fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s JOIN departments ON departments.id = %s.department_id "+
				"WHERE %s.%s = %s.id AND %s.deleted_at IS NULL AND departments.code IN ?)",
			t.deptJoin, t.deptJoin, t.deptJoin, t.deptFK, t.table, t.deptJoin,
		)
		return cond, []interface{}{x.Codes}
	case access.UserGranted:
		if t.userJoin == "" {
			return "1 = 0", nil
		}
		cond := fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s WHERE %s.%s = %s.id AND %s.user_id = ? AND %s.deleted_at IS NULL)",
			t.userJoin, t.userJoin, t.userFK, t.table, t.userJoin, t.userJoin,
		)
		return cond, []interface{}{x.UserID}
	case access.And:
		return combine(t, x.Exprs, " AND ")
	case access.Or:
		return combine(t, x.Exprs, " OR ")
	default:
		return "1 = 0", nil
	}
}

func combine(t filterTarget, exprs []access.Expr, op string) (string, []interface{}) {
	if len(exprs) == 0 {
		return "1 = 1", nil
	}
	parts := make([]string, 0, len(exprs))
	var args []interface{}
	for _, e := range exprs {
		sql, a := translateFilter(t, e)
		parts = append(parts, "("+sql+")")
		args = append(args, a...)
	}
	return strings.Join(parts, op), args
}
