package entity

// Faction is a resolved team faction. Discord factions are roles carried on
// the member (RoleID); Slack factions are user groups listing their members.
type Faction struct {
	Name      string
	RoleID    string
	MemberIDs []string
}

// Has reports whether the user belongs to the faction.
func (f Faction) Has(u User) bool {
	if f.RoleID != "" && u.HasRole(f.RoleID) {
		return true
	}
	for _, id := range f.MemberIDs {
		if id == u.ID {
			return true
		}
	}
	return false
}
