package models

import (
	"fmt"
	"strconv"
)

// User is a server-owned account record.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Enabled  bool   `json:"enabled"`
}

func (u User) String() string {
	state := "enabled"
	if !u.Enabled {
		state = "disabled"
	}
	return fmt.Sprintf("%d\t%s\t%s\t%s\t%s", u.ID, u.Username, u.Email, u.Role, state)
}

// UserUpdate is a partial edit. Nil fields are omitted from the request and
// left unchanged by the server.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	Enabled  *bool   `json:"enabled,omitempty"`
}

// UserUpdateFrom seeds an edit with the editable fields of u. Password is
// left unset so an untouched dialog never resets it.
func UserUpdateFrom(u User) UserUpdate {
	username, email, role, enabled := u.Username, u.Email, u.Role, u.Enabled
	return UserUpdate{
		Username: &username,
		Email:    &email,
		Role:     &role,
		Enabled:  &enabled,
	}
}

// IsEmpty reports whether no field is set.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Password == nil && u.Email == nil && u.Role == nil && u.Enabled == nil
}

// ParseUserID parses a user id typed at the prompt.
func ParseUserID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", s)
	}
	return id, nil
}
