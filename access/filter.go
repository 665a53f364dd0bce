package access

// Expr is a storage-agnostic visibility filter. The policy builds one per
// principal and the store adapter translates it into query clauses, so the
// predicate logic stays testable away from the database.
type Expr interface {
	isExpr()
}

// MatchAll matches every row (admin listings, publish state included).
type MatchAll struct{}

// Published matches rows with is_published = true.
type Published struct{}

// Ungranted matches rows with no grants of any kind.
type Ungranted struct{}

// DeptGranted matches rows granted to any department in Codes.
type DeptGranted struct {
	Codes []string
}

// UserGranted matches rows directly assigned to the user.
type UserGranted struct {
	UserID uint
}

// And matches rows satisfying every sub-expression.
type And struct {
	Exprs []Expr
}

// Or matches rows satisfying at least one sub-expression.
type Or struct {
	Exprs []Expr
}

func (MatchAll) isExpr()    {}
func (Published) isExpr()   {}
func (Ungranted) isExpr()   {}
func (DeptGranted) isExpr() {}
func (UserGranted) isExpr() {}
func (And) isExpr()         {}
func (Or) isExpr()          {}
