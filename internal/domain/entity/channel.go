package entity

// Channel identifies where a command came from.
type Channel struct {
	Platform string
	TeamID   string // Slack team or Discord guild
	ID       string
}

// Key scopes the channel id by platform so raids from different chat
// platforms never share a registry map.
func (c Channel) Key() string {
	return c.Platform + ":" + c.ID
}

// TeamKey identifies the team the channel belongs to across platforms.
func (c Channel) TeamKey() string {
	return c.Platform + ":" + c.TeamID
}
