package store

import "github.com/dtroode/userdirectory/internal/model"

// Action is a mutation of the user collection.
type Action interface {
	// Name identifies the action in logs.
	Name() string
	reduce(users []model.User) ([]model.User, bool)
}

// SetUsers replaces the whole collection.
type SetUsers struct {
	Users []model.User
}

// AddUser appends a user, or replaces the one with the same id in place.
type AddUser struct {
	User model.User
}

// UpdateUser replaces the user with the same id in place. Missing ids are ignored.
type UpdateUser struct {
	User model.User
}

// DeleteUser removes every user with the id.
type DeleteUser struct {
	ID int64
}

func (SetUsers) Name() string   { return "set_users" }
func (AddUser) Name() string    { return "add_user" }
func (UpdateUser) Name() string { return "update_user" }
func (DeleteUser) Name() string { return "delete_user" }

// Reduce applies the action to users and returns the resulting collection
// and whether anything changed. The input slice is never modified; when
// nothing changed the input is returned as is.
func Reduce(users []model.User, action Action) ([]model.User, bool) {
	return action.reduce(users)
}

func (a SetUsers) reduce(_ []model.User) ([]model.User, bool) {
	return collapseDuplicates(a.Users), true
}

func (a AddUser) reduce(users []model.User) ([]model.User, bool) {
	if i := indexOf(users, a.User.ID); i >= 0 {
		return replaceAt(users, i, a.User)
	}

	out := make([]model.User, len(users), len(users)+1)
	copy(out, users)
	return append(out, a.User), true
}

func (a UpdateUser) reduce(users []model.User) ([]model.User, bool) {
	i := indexOf(users, a.User.ID)
	if i < 0 {
		return users, false
	}
	return replaceAt(users, i, a.User)
}

func (a DeleteUser) reduce(users []model.User) ([]model.User, bool) {
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.ID != a.ID {
			out = append(out, u)
		}
	}
	if len(out) == len(users) {
		return users, false
	}
	return out, true
}

func indexOf(users []model.User, id int64) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func replaceAt(users []model.User, i int, u model.User) ([]model.User, bool) {
	if users[i] == u {
		return users, false
	}
	out := make([]model.User, len(users))
	copy(out, users)
	out[i] = u
	return out, true
}

// collapseDuplicates keeps the first position of every id and the last value seen for it.
func collapseDuplicates(users []model.User) []model.User {
	out := make([]model.User, 0, len(users))
	pos := make(map[int64]int, len(users))
	for _, u := range users {
		if i, ok := pos[u.ID]; ok {
			out[i] = u
			continue
		}
		pos[u.ID] = len(out)
		out = append(out, u)
	}
	return out
}
