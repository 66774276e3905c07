package entity

import "time"

// NewRaid is the caller-supplied part of a raid at creation time.
type NewRaid struct {
	Subject string
	EndTime string
	Payload map[string]string
}

// Raid is one active raid in a channel.
type Raid struct {
	ID           string
	Subject      string
	Seq          int64
	CreatedAt    time.Time
	DefaultEndAt time.Time
	StartTime    string // free-form time of day, may not parse
	EndTime      string // free-form time of day, may not parse
	Gym          *Gym
	Attendees    []Attendee // join order, first is the leader
	Message      *MessageRef
	Payload      map[string]string
}

// Attendee is a user's participation in a single raid. The annotations here
// belong to the raid, not to the user.
type Attendee struct {
	User       User
	Additional int
	Arrived    bool
}

// MessageRef points at the message that displays a raid so it can be edited.
type MessageRef struct {
	Platform  string
	ChannelID string
	MessageID string
}

// AttendeeCount returns the number of attendees plus the guests they bring.
func (r *Raid) AttendeeCount() int {
	total := len(r.Attendees)
	for _, a := range r.Attendees {
		total += a.Additional
	}
	return total
}

// IndexOf returns the position of the user in the attendee list or -1.
func (r *Raid) IndexOf(userID string) int {
	for i, a := range r.Attendees {
		if a.User.ID == userID {
			return i
		}
	}
	return -1
}

// Leader returns the raid creator, or nil when everyone has left.
func (r *Raid) Leader() *Attendee {
	if len(r.Attendees) == 0 {
		return nil
	}
	return &r.Attendees[0]
}

// Clone returns a deep copy safe to hand out of the registry.
func (r *Raid) Clone() *Raid {
	if r == nil {
		return nil
	}
	c := *r
	c.Attendees = make([]Attendee, len(r.Attendees))
	for i, a := range r.Attendees {
		c.Attendees[i] = a
		c.Attendees[i].User = a.User.Clone()
	}
	if r.Gym != nil {
		gym := *r.Gym
		c.Gym = &gym
	}
	if r.Message != nil {
		msg := *r.Message
		c.Message = &msg
	}
	if r.Payload != nil {
		c.Payload = make(map[string]string, len(r.Payload))
		for k, v := range r.Payload {
			c.Payload[k] = v
		}
	}
	return &c
}
