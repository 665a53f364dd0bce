package services

import "errors"

// Typed outcomes surfaced by the service layer. Controllers map these to
// HTTP statuses; storage connectivity failures pass through untouched so an
// empty result is never confused with a broken store.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
)
