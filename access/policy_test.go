package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	admin := &Principal{UserID: 1, Role: "ADMIN"}
	super := &Principal{UserID: 2, Role: "CUSTOMER", IsSuperUser: true}
	worker := &Principal{UserID: 3, Role: "WORKER"}

	assert.True(t, Authorize(admin, ActionManageContent))
	assert.True(t, Authorize(super, ActionManageContent))
	assert.False(t, Authorize(worker, ActionManageContent))
	assert.False(t, Authorize(nil, ActionManageContent))

	assert.True(t, Authorize(worker, ActionWriteProgress))
	assert.False(t, Authorize(nil, ActionWriteProgress))
}

func TestCanViewVideo(t *testing.T) {
	policy := Policy{PublicCode: "PUBLIC"}

	admin := &Principal{UserID: 1, Role: "ADMIN"}
	worker := &Principal{UserID: 2, Role: "WORKER", Departments: []string{"IT"}}
	customer := &Principal{UserID: 3, Role: "CUSTOMER"}

	t.Run("unpublished only visible to admins", func(t *testing.T) {
		v := VideoGrants{Published: false}
		assert.True(t, policy.CanViewVideo(admin, v))
		assert.False(t, policy.CanViewVideo(worker, v))
		assert.False(t, policy.CanViewVideo(nil, v))
	})

	t.Run("no grants means public", func(t *testing.T) {
		v := VideoGrants{Published: true}
		assert.True(t, policy.CanViewVideo(nil, v))
		assert.True(t, policy.CanViewVideo(customer, v))
	})

	t.Run("department grant restricts to members", func(t *testing.T) {
		v := VideoGrants{Published: true, DeptCodes: []string{"IT"}}
		assert.True(t, policy.CanViewVideo(worker, v))
		assert.False(t, policy.CanViewVideo(customer, v))
		assert.False(t, policy.CanViewVideo(nil, v))
	})

	t.Run("public department grant opens the video to guests", func(t *testing.T) {
		v := VideoGrants{Published: true, DeptCodes: []string{"PUBLIC"}}
		assert.True(t, policy.CanViewVideo(nil, v))
		assert.True(t, policy.CanViewVideo(customer, v))
	})

	t.Run("direct assignment grants access", func(t *testing.T) {
		v := VideoGrants{Published: true, DeptCodes: []string{"HR"}, UserIDs: []uint{3}}
		assert.True(t, policy.CanViewVideo(customer, v))
		assert.False(t, policy.CanViewVideo(worker, v))
	})
}

func TestCanViewPlaylist(t *testing.T) {
	policy := Policy{PublicCode: "PUBLIC"}

	worker := &Principal{UserID: 2, Role: "WORKER", Departments: []string{"IT"}}

	t.Run("no grants means public", func(t *testing.T) {
		l := PlaylistGrants{Published: true}
		assert.True(t, policy.CanViewPlaylist(nil, l))
	})

	t.Run("public code among grants opens to guests", func(t *testing.T) {
		l := PlaylistGrants{Published: true, DeptCodes: []string{"HR", "PUBLIC"}}
		assert.True(t, policy.CanViewPlaylist(nil, l))
		assert.True(t, policy.CanViewPlaylist(worker, l))
	})

	t.Run("restricted playlist needs department intersection", func(t *testing.T) {
		l := PlaylistGrants{Published: true, DeptCodes: []string{"HR"}}
		assert.False(t, policy.CanViewPlaylist(worker, l))
		assert.False(t, policy.CanViewPlaylist(nil, l))

		l.DeptCodes = []string{"IT"}
		assert.True(t, policy.CanViewPlaylist(worker, l))
	})

	t.Run("unpublished hidden from non-admins", func(t *testing.T) {
		l := PlaylistGrants{Published: false}
		assert.False(t, policy.CanViewPlaylist(worker, l))
		assert.True(t, policy.CanViewPlaylist(&Principal{Role: "ADMIN"}, l))
	})
}

func TestVideoFilterShape(t *testing.T) {
	policy := Policy{PublicCode: "PUBLIC"}

	t.Run("admin matches everything", func(t *testing.T) {
		expr := policy.VideoFilter(&Principal{Role: "ADMIN"})
		assert.IsType(t, MatchAll{}, expr)
	})

	t.Run("guest filter is published and ungranted-or-public", func(t *testing.T) {
		expr := policy.VideoFilter(nil)
		and, ok := expr.(And)
		assert.True(t, ok)
		assert.Len(t, and.Exprs, 2)
		assert.IsType(t, Published{}, and.Exprs[0])

		or, ok := and.Exprs[1].(Or)
		assert.True(t, ok)
		assert.Len(t, or.Exprs, 2)
	})

	t.Run("authenticated filter includes direct assignment", func(t *testing.T) {
		expr := policy.VideoFilter(&Principal{UserID: 7, Role: "WORKER", Departments: []string{"IT"}})
		and := expr.(And)
		or := and.Exprs[1].(Or)
		assert.Len(t, or.Exprs, 3)

		dept := or.Exprs[1].(DeptGranted)
		assert.ElementsMatch(t, []string{"PUBLIC", "IT"}, dept.Codes)
		assert.Equal(t, UserGranted{UserID: 7}, or.Exprs[2])
	})
}
