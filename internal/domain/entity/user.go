package entity

// User is a chat identity. ID is stable; DisplayName can change at any time.
type User struct {
	ID          string
	DisplayName string
	Roles       []string // platform role ids, Discord only
}

// Mention returns the platform mention markup for the user.
func (u User) Mention() string {
	return "<@" + u.ID + ">"
}

// HasRole reports whether the user carries the given role id.
func (u User) HasRole(roleID string) bool {
	for _, r := range u.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}

func (u User) Clone() User {
	if u.Roles != nil {
		u.Roles = append([]string(nil), u.Roles...)
	}
	return u
}
