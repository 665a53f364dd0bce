package access

// Policy decides content visibility. PublicCode is the reserved department
// code whose grant opens an item to every principal, anonymous included.
type Policy struct {
	PublicCode string
}

// VideoGrants is the loaded grant state of a video.
type VideoGrants struct {
	Published bool
	DeptCodes []string // codes of departments granted access
	UserIDs   []uint   // directly assigned users
}

// PlaylistGrants is the loaded grant state of a playlist. Playlists carry
// department grants only.
type PlaylistGrants struct {
	Published bool
	DeptCodes []string
}

// CanViewVideo decides visibility of a single video for a principal.
// Unpublished videos are visible to admins only. A video with no grants at
// all is public. Otherwise the principal needs a department intersection, a
// direct assignment, or the public department among the grants.
func (po Policy) CanViewVideo(p *Principal, v VideoGrants) bool {
	if p.IsAdmin() {
		return true
	}
	if !v.Published {
		return false
	}
	if len(v.DeptCodes) == 0 && len(v.UserIDs) == 0 {
		return true
	}
	if contains(v.DeptCodes, po.PublicCode) {
		return true
	}
	if p == nil {
		return false
	}
	for _, code := range p.Departments {
		if contains(v.DeptCodes, code) {
			return true
		}
	}
	for _, id := range v.UserIDs {
		if id == p.UserID {
			return true
		}
	}
	return false
}

// CanViewPlaylist decides visibility of a single playlist for a principal.
// Same shape as videos minus direct user assignment.
func (po Policy) CanViewPlaylist(p *Principal, l PlaylistGrants) bool {
	if p.IsAdmin() {
		return true
	}
	if !l.Published {
		return false
	}
	if len(l.DeptCodes) == 0 {
		return true
	}
	if contains(l.DeptCodes, po.PublicCode) {
		return true
	}
	if p == nil {
		return false
	}
	for _, code := range p.Departments {
		if contains(l.DeptCodes, code) {
			return true
		}
	}
	return false
}

// VideoFilter builds the list-query filter equivalent of CanViewVideo.
func (po Policy) VideoFilter(p *Principal) Expr {
	if p.IsAdmin() {
		return MatchAll{}
	}
	if p == nil {
		return And{Exprs: []Expr{
			Published{},
			Or{Exprs: []Expr{
				Ungranted{},
				DeptGranted{Codes: []string{po.PublicCode}},
			}},
		}}
	}
	return And{Exprs: []Expr{
		Published{},
		Or{Exprs: []Expr{
			Ungranted{},
			DeptGranted{Codes: append([]string{po.PublicCode}, p.Departments...)},
			UserGranted{UserID: p.UserID},
		}},
	}}
}

// PlaylistFilter builds the list-query filter equivalent of CanViewPlaylist.
func (po Policy) PlaylistFilter(p *Principal) Expr {
	if p.IsAdmin() {
		return MatchAll{}
	}
	codes := []string{po.PublicCode}
	if p != nil {
		codes = append(codes, p.Departments...)
	}
	return And{Exprs: []Expr{
		Published{},
		Or{Exprs: []Expr{
			Ungranted{},
			DeptGranted{Codes: codes},
		}},
	}}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
