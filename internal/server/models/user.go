// Package models defines the records persisted in the embedded store.
package models

import "github.com/dmitrijs2005/campusmatch/internal/server/interests"

// User is a registered student profile.
type User struct {
	ID    int64
	Name  string
	Email string // empty when the user registered without one
	// Faculty partitions the match pool; compared as an exact string.
	Faculty string
	// Visible is the "beacon mode" flag. It is stored but matching ignores it.
	Visible   bool
	Mission   string
	Interests interests.Set
}
