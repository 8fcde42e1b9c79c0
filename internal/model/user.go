package model

import "fmt"

// User is a directory entry.
type User struct {
	ID    int64  `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
}

// Validate checks that the user can be keyed in a collection.
func (u User) Validate() error {
	if u.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidUser, u.ID)
	}
	return nil
}

// Snapshot is an immutable view of the user collection at a given version.
// Two snapshots with the same version hold the same users.
type Snapshot struct {
	Version uint64
	Users   []User
}

// Find returns the first user with the given id.
func (s Snapshot) Find(id int64) (User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
