package service

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/diegoclair/raid-bot/internal/domain"
	"github.com/diegoclair/raid-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ash   = entity.User{ID: "U1", DisplayName: "Ash"}
	misty = entity.User{ID: "U2", DisplayName: "Misty"}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRegistry returns a registry whose clock reads *now.
func newTestRegistry(t *testing.T, now *time.Time) *Registry {
	t.Helper()

	r := NewRegistry(discardLogger(), RegistryConfig{
		DefaultDuration:   2 * time.Hour,
		ExpireOnStartTime: domain.ExpireOnStartTime,
	})
	r.now = func() time.Time { return *now }
	return r
}

func TestRegistry_Create(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	r := newTestRegistry(t, &now)

	t.Run("Should allocate increasing ids across channels", func(t *testing.T) {
		var ids []string
		for i := 0; i < 3; i++ {
			raid := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})
			ids = append(ids, raid.ID)
		}
		raid := r.Create("C2", ash, entity.NewRaid{Subject: "lugia"})
		ids = append(ids, raid.ID)

		assert.Equal(t, []string{"mewtwo-0", "mewtwo-1", "mewtwo-2", "lugia-3"}, ids)
		assert.Len(t, r.List("C1"), 3)
		assert.Len(t, r.List("C2"), 1)
	})

	t.Run("Should initialize times and roster", func(t *testing.T) {
		raid := r.Create("C1", misty, entity.NewRaid{
			Subject: "mewtwo",
			EndTime: "11:00 am",
			Payload: map[string]string{"level": "5"},
		})

		assert.Equal(t, now, raid.CreatedAt)
		assert.Equal(t, now.Add(2*time.Hour), raid.DefaultEndAt)
		assert.Equal(t, "11:00 am", raid.EndTime)
		assert.Equal(t, "5", raid.Payload["level"])
		require.Len(t, raid.Attendees, 1)
		assert.Equal(t, misty, raid.Attendees[0].User)
		assert.Zero(t, raid.Attendees[0].Additional)
		assert.False(t, raid.Attendees[0].Arrived)

		last, ok := r.Resolve("C1", misty, "")
		require.True(t, ok)
		assert.Equal(t, raid.ID, last.ID)
	})

	t.Run("Should not expose registry state through returned raids", func(t *testing.T) {
		raid := r.Create("C3", ash, entity.NewRaid{Subject: "zapdos"})
		raid.Attendees = nil
		raid.StartTime = "1:00 pm"

		stored, ok := r.Resolve("C3", ash, raid.ID)
		require.True(t, ok)
		assert.Len(t, stored.Attendees, 1)
		assert.Empty(t, stored.StartTime)
	})
}

func TestRegistry_Resolve(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	r := newTestRegistry(t, &now)

	r.counter = 3
	raid := r.Create("C1", ash, entity.NewRaid{Subject: "MEWTWO"})
	require.Equal(t, "MEWTWO-3", raid.ID)

	tests := []struct {
		name    string
		channel string
		user    entity.User
		raidID  string
		wantOK  bool
	}{
		{name: "Should match exact id", channel: "C1", user: misty, raidID: "MEWTWO-3", wantOK: true},
		{name: "Should match lower case", channel: "C1", user: misty, raidID: "mewtwo-3", wantOK: true},
		{name: "Should match mixed case", channel: "C1", user: misty, raidID: "MewTwo-3", wantOK: true},
		{name: "Should fall back to last raid", channel: "C1", user: ash, raidID: "", wantOK: true},
		{name: "Should miss without last raid", channel: "C1", user: misty, raidID: "", wantOK: false},
		{name: "Should miss unknown id", channel: "C1", user: ash, raidID: "lugia-1", wantOK: false},
		{name: "Should miss unknown channel", channel: "C9", user: ash, raidID: "mewtwo-3", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.channel, tt.user, tt.raidID)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "MEWTWO-3", got.ID)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestRegistry_ResolveArgs(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Should pick the first token that is a raid", func(t *testing.T) {
		r := newTestRegistry(t, &now)
		first := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})
		r.Create("C1", ash, entity.NewRaid{Subject: "lugia"})

		raid, rest, err := r.ResolveArgs("C1", misty, []string{"Town", "lugia-1", "MEWTWO-0", "Hall"})
		require.NoError(t, err)
		assert.Equal(t, "lugia-1", raid.ID)
		assert.Equal(t, []string{"Town", "Hall"}, rest)
		assert.NotEqual(t, first.ID, raid.ID)
	})

	t.Run("Should fall back to last raid and keep leftovers", func(t *testing.T) {
		r := newTestRegistry(t, &now)
		created := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})

		raid, rest, err := r.ResolveArgs("C1", ash, []string{"garbage", "gym-name"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, raid.ID)
		assert.Equal(t, []string{"garbage", "gym-name"}, rest)
	})

	t.Run("Should return an error naming the tokens without a last raid", func(t *testing.T) {
		r := newTestRegistry(t, &now)
		r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})

		raid, rest, err := r.ResolveArgs("C1", misty, []string{"garbage", "gym-name"})
		require.ErrorIs(t, err, domain.ErrNoRaidForArgs)
		assert.Contains(t, err.Error(), "garbage gym-name")
		assert.Nil(t, raid)
		assert.Nil(t, rest)
	})

	t.Run("Should use last raid when no tokens are given", func(t *testing.T) {
		r := newTestRegistry(t, &now)
		created := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})

		raid, rest, err := r.ResolveArgs("C1", ash, nil)
		require.NoError(t, err)
		assert.Equal(t, created.ID, raid.ID)
		assert.Empty(t, rest)

		_, _, err = r.ResolveArgs("C1", misty, nil)
		require.ErrorIs(t, err, domain.ErrNoRaidForArgs)
	})
}

func TestRegistry_Attendees(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Should reject a second join by the same identity", func(t *testing.T) {
		r := newTestRegistry(t, &now)
		raid := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})

		joined, err := r.AddAttendee("C1", misty, raid.ID, 2)
		require.NoError(t, err)
		require.Len(t, joined.Attendees, 2)
		assert.Equal(t, 2, joined.Attendees[1].Additional)

		renamed := misty
		renamed.DisplayName = "Misty Waterflower"
		_, err = r.AddAttendee("C1", renamed, raid.ID, 0)
		require.ErrorIs(t, err, domain.ErrAlreadyJoined)

		stored, _ := r.Resolve("C1", ash, raid.ID)
		assert.Len(t, stored.Attendees, 2)
	})

	t.Run("Should report raid not found", func(t *testing.T) {
		r := newTestRegistry(t, &now)
		r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})

		_, err := r.AddAttendee("C1", misty, "lugia-7", 0)
		require.ErrorIs(t, err, domain.ErrRaidNotFound)
	})

	t.Run("Should restore membership after leave and join", func(t *testing.T) {
		r := newTestRegistry(t, &now)
		raid := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})

		_, err := r.AddAttendee("C1", misty, raid.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, r.AttendeeCountFor("C1", ash, raid.ID))

		left, err := r.RemoveAttendee("C1", misty, raid.ID)
		require.NoError(t, err)
		assert.Equal(t, -1, left.IndexOf(misty.ID))
		assert.Equal(t, 1, AttendeeCount(left))

		back, err := r.AddAttendee("C1", misty, raid.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, 1, back.IndexOf(misty.ID))
		assert.Equal(t, len(back.Attendees)+3, AttendeeCount(back))
		assert.Equal(t, 5, r.AttendeeCountFor("C1", ash, raid.ID))
	})

	t.Run("Should clamp negative guest counts", func(t *testing.T) {
		r := newTestRegistry(t, &now)
		raid := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})

		joined, err := r.AddAttendee("C1", misty, raid.ID, -4)
		require.NoError(t, err)
		assert.Zero(t, joined.Attendees[1].Additional)
	})

	t.Run("Should surface leaving a raid the user never joined", func(t *testing.T) {
		r := newTestRegistry(t, &now)
		raid := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})

		_, err := r.RemoveAttendee("C1", misty, raid.ID)
		require.ErrorIs(t, err, domain.ErrNotAttending)

		// failed commands do not move the last-raid pointer
		_, ok := r.Resolve("C1", misty, "")
		assert.False(t, ok)
	})

	t.Run("Should keep arrival scoped to one raid", func(t *testing.T) {
		r := newTestRegistry(t, &now)
		first := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})
		second := r.Create("C1", misty, entity.NewRaid{Subject: "lugia"})
		_, err := r.AddAttendee("C1", ash, second.ID, 0)
		require.NoError(t, err)

		updated, err := r.SetArrived("C1", ash, first.ID, true)
		require.NoError(t, err)
		assert.True(t, updated.Attendees[0].Arrived)

		other, _ := r.Resolve("C1", ash, second.ID)
		assert.False(t, other.Attendees[1].Arrived)
	})
}

func TestRegistry_AttendeeCountFor(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	r := newTestRegistry(t, &now)
	raid := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})

	assert.Equal(t, 1, r.AttendeeCountFor("C1", ash, raid.ID))
	assert.Zero(t, r.AttendeeCountFor("C1", ash, "lugia-9"))

	assert.Panics(t, func() { r.AttendeeCountFor("", ash, raid.ID) })
	assert.Panics(t, func() { r.AttendeeCountFor("C1", entity.User{}, raid.ID) })
	assert.Panics(t, func() { r.AttendeeCountFor("C1", ash, "") })
}

func TestRegistry_Setters(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	r := newTestRegistry(t, &now)
	raid := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})
	r.Create("C1", misty, entity.NewRaid{Subject: "lugia"})

	updated, err := r.SetStartTime("C1", ash, raid.ID, "not a time")
	require.NoError(t, err)
	assert.Equal(t, "not a time", updated.StartTime)

	updated, err = r.SetEndTime("C1", ash, raid.ID, "11:30 am")
	require.NoError(t, err)
	assert.Equal(t, "11:30 am", updated.EndTime)

	gym := &entity.Gym{ID: 7, Name: "Old Mill"}
	updated, err = r.SetGym("C1", misty, raid.ID, gym)
	require.NoError(t, err)
	require.NotNil(t, updated.Gym)
	assert.Equal(t, "Old Mill", updated.Gym.Name)

	// misty's last raid moved to the raid she touched
	last, ok := r.Resolve("C1", misty, "")
	require.True(t, ok)
	assert.Equal(t, raid.ID, last.ID)

	ref := entity.MessageRef{Platform: domain.PlatformDiscord, ChannelID: "C1", MessageID: "M1"}
	_, err = r.SetMessage("C1", ash, raid.ID, ref)
	require.NoError(t, err)
	got, ok := r.Message("C1", ash, raid.ID)
	require.True(t, ok)
	assert.Equal(t, ref, *got)

	_, err = r.SetStartTime("C1", ash, "zapdos-1", "1:00 pm")
	require.ErrorIs(t, err, domain.ErrRaidNotFound)
}

func TestRegistry_Sweep(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2024, 1, 1, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name          string
		createdAt     time.Time
		startTime     string
		endTime       string
		expireOnStart bool
		sweepAt       time.Time
		wantEvicted   bool
	}{
		{
			name:          "Should evict past default end without times",
			createdAt:     day(8, 0),
			sweepAt:       day(10, 1),
			expireOnStart: true,
			wantEvicted:   true,
		},
		{
			name:          "Should keep future default end without times",
			createdAt:     day(9, 0),
			sweepAt:       day(10, 1),
			expireOnStart: true,
			wantEvicted:   false,
		},
		{
			name:          "Should treat unparseable times as absent",
			createdAt:     day(8, 0),
			startTime:     "soon",
			endTime:       "whenever",
			sweepAt:       day(10, 1),
			expireOnStart: true,
			wantEvicted:   true,
		},
		{
			name:          "Should evict past end time",
			createdAt:     day(10, 0),
			endTime:       "10:30 am",
			sweepAt:       day(10, 31),
			expireOnStart: true,
			wantEvicted:   true,
		},
		{
			name:          "Should keep future end time even past default end",
			createdAt:     day(8, 0),
			endTime:       "11:00 am",
			sweepAt:       day(10, 30),
			expireOnStart: true,
			wantEvicted:   false,
		},
		{
			name:          "Should evict past start time before default end",
			createdAt:     day(10, 0),
			startTime:     "10:15",
			sweepAt:       day(10, 16),
			expireOnStart: true,
			wantEvicted:   true,
		},
		{
			name:          "Should keep started raid when start eviction is off",
			createdAt:     day(10, 0),
			startTime:     "10:15",
			sweepAt:       day(10, 16),
			expireOnStart: false,
			wantEvicted:   false,
		},
		{
			name:          "Should fall back to default end when start eviction is off",
			createdAt:     day(8, 0),
			startTime:     "8:15 am",
			sweepAt:       day(10, 1),
			expireOnStart: false,
			wantEvicted:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.createdAt
			r := newTestRegistry(t, &now)
			r.expireOnStart = tt.expireOnStart

			raid := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo", EndTime: tt.endTime})
			if tt.startTime != "" {
				_, err := r.SetStartTime("C1", ash, raid.ID, tt.startTime)
				require.NoError(t, err)
			}

			n := r.Sweep(tt.sweepAt)

			_, ok := r.Resolve("C1", ash, raid.ID)
			assert.Equal(t, tt.wantEvicted, !ok)
			if tt.wantEvicted {
				assert.Equal(t, 1, n)
			} else {
				assert.Zero(t, n)
			}
		})
	}
}

func TestRegistry_SweepIsVisibleImmediately(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	r := newTestRegistry(t, &now)

	raid := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})
	kept := r.Create("C1", misty, entity.NewRaid{Subject: "lugia", EndTime: "11:59 pm"})

	require.Equal(t, 1, r.Sweep(now.Add(3*time.Hour)))

	_, ok := r.Resolve("C1", ash, raid.ID)
	assert.False(t, ok)
	_, ok = r.Resolve("C1", ash, "")
	assert.False(t, ok, "last raid pointing at an evicted raid should be dropped")

	_, err := r.AddAttendee("C1", ash, raid.ID, 0)
	require.ErrorIs(t, err, domain.ErrRaidNotFound)

	_, ok = r.Resolve("C1", misty, kept.ID)
	assert.True(t, ok)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	r := newTestRegistry(t, &now)
	raid := r.Create("C1", ash, entity.NewRaid{Subject: "mewtwo"})

	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			user := entity.User{ID: fmt.Sprintf("U%d", 100+i)}
			_, _ = r.AddAttendee("C1", user, raid.ID, 1)
			r.Sweep(now)
			r.List("C1")
		}(i)
	}
	for i := 0; i < 20; i++ {
		<-done
	}

	assert.Equal(t, 1+20*2, r.AttendeeCountFor("C1", ash, raid.ID))
}
