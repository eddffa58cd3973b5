package store

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraint is returned when a pending entity violates a column constraint.
	ErrConstraint = errors.New("constraint violation")

	// ErrUserHasArticles is returned when deleting a user that still owns articles.
	ErrUserHasArticles = errors.New("user has articles")
)
