package services

import "gorm.io/gorm"

// AdminService owns the admin CRUD surface and the structural invariants the
// schema alone cannot express: delete guards, uniqueness checks and the
// transactional replace of grant and question rows.
type AdminService struct {
	db        *gorm.DB
	saltRound int
}

func NewAdminService(db *gorm.DB, saltRound int) *AdminService {
	return &AdminService{db: db, saltRound: saltRound}
}

// dedupe drops repeated ids from a grant list so a sloppy caller cannot
// create duplicate join rows in a single replace.
func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
