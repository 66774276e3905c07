package service

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/raid-bot/internal/domain"
	"github.com/diegoclair/raid-bot/internal/domain/entity"
)

// RegistryConfig holds the values the registry reads once at construction.
type RegistryConfig struct {
	DefaultDuration   time.Duration
	ExpireOnStartTime bool
}

// Registry owns every active raid, keyed by channel and then by lower-cased
// raid id. Raids never leave the registry by reference: every method returns
// a copy, and all mutation goes through the registry under its lock.
type Registry struct {
	mu            sync.Mutex
	raids         map[string]map[string]*entity.Raid
	lastRaid      map[string]string // user id -> raid id
	counter       int64
	duration      time.Duration
	expireOnStart bool
	now           func() time.Time
	logger        *slog.Logger
}

func NewRegistry(log *slog.Logger, cfg RegistryConfig) *Registry {
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = domain.DefaultRaidDuration
	}
	return &Registry{
		raids:         make(map[string]map[string]*entity.Raid),
		lastRaid:      make(map[string]string),
		duration:      cfg.DefaultDuration,
		expireOnStart: cfg.ExpireOnStartTime,
		now:           time.Now,
		logger:        log.With(slog.String("service", "registry")),
	}
}

// Create registers a new raid in the channel with the creator as its first
// attendee.
func (r *Registry) Create(channelID string, creator entity.User, data entity.NewRaid) *entity.Raid {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	seq := r.counter
	r.counter++

	raid := &entity.Raid{
		ID:           data.Subject + "-" + strconv.FormatInt(seq, 10),
		Subject:      data.Subject,
		Seq:          seq,
		CreatedAt:    now,
		DefaultEndAt: now.Add(r.duration),
		EndTime:      data.EndTime,
		Attendees:    []entity.Attendee{{User: creator.Clone()}},
		Payload:      data.Payload,
	}

	channel, ok := r.raids[channelID]
	if !ok {
		channel = make(map[string]*entity.Raid)
		r.raids[channelID] = channel
	}
	channel[strings.ToLower(raid.ID)] = raid
	r.lastRaid[creator.ID] = raid.ID

	r.logger.Debug("raid created",
		slog.String("channel", channelID),
		slog.String("raid", raid.ID),
		slog.String("user", creator.ID))

	return raid.Clone()
}

// Resolve finds a raid by id, ignoring case. An empty raidID falls back to the
// raid the user touched last.
func (r *Registry) Resolve(channelID string, user entity.User, raidID string) (*entity.Raid, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raid := r.resolve(channelID, user, raidID)
	if raid == nil {
		return nil, false
	}
	return raid.Clone(), true
}

func (r *Registry) resolve(channelID string, user entity.User, raidID string) *entity.Raid {
	channel, ok := r.raids[channelID]
	if !ok {
		return nil
	}
	if raidID == "" {
		raidID = r.lastRaid[user.ID]
		if raidID == "" {
			return nil
		}
	}
	return channel[strings.ToLower(raidID)]
}

// ResolveArgs picks the raid named by the first token that is a raid id, or
// the user's last raid when none is. The tokens that are not raid ids are
// returned so callers can treat them as the rest of the command.
func (r *Registry) ResolveArgs(channelID string, user entity.User, tokens []string) (*entity.Raid, []string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raid, rest := r.resolveArgs(channelID, user, tokens)
	if raid == nil {
		return nil, nil, noRaidError(tokens)
	}
	return raid.Clone(), rest, nil
}

func (r *Registry) resolveArgs(channelID string, user entity.User, tokens []string) (*entity.Raid, []string) {
	var found *entity.Raid
	rest := make([]string, 0, len(tokens))
	for _, token := range tokens {
		raid := r.resolve(channelID, user, token)
		if raid == nil {
			rest = append(rest, token)
			continue
		}
		if found == nil {
			found = raid
		}
	}
	if found == nil {
		found = r.resolve(channelID, user, "")
	}
	return found, rest
}

func noRaidError(tokens []string) error {
	if len(tokens) == 0 {
		return domain.ErrNoRaidForArgs
	}
	return fmt.Errorf("%w for %s", domain.ErrNoRaidForArgs, strings.Join(tokens, " "))
}

// List returns the channel's raids in creation order.
func (r *Registry) List(channelID string) []*entity.Raid {
	r.mu.Lock()
	defer r.mu.Unlock()

	channel := r.raids[channelID]
	raids := make([]*entity.Raid, 0, len(channel))
	for _, raid := range channel {
		raids = append(raids, raid.Clone())
	}
	sort.Slice(raids, func(i, j int) bool {
		return raids[i].Seq < raids[j].Seq
	})
	return raids
}

// AttendeeCount returns attendees plus their guests for a resolved raid.
func AttendeeCount(raid *entity.Raid) int {
	return raid.AttendeeCount()
}

// AttendeeCountFor looks the raid up and counts its attendees. Missing lookup
// fields are a caller bug and panic; an unknown raid counts as zero.
func (r *Registry) AttendeeCountFor(channelID string, user entity.User, raidID string) int {
	if channelID == "" || user.ID == "" || raidID == "" {
		panic("registry: attendee count needs a channel, a user and a raid id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	raid := r.resolve(channelID, user, raidID)
	if raid == nil {
		return 0
	}
	return raid.AttendeeCount()
}

// AddAttendee adds the user to the raid along with the guests they bring.
func (r *Registry) AddAttendee(channelID string, user entity.User, raidID string, additional int) (*entity.Raid, error) {
	if additional < 0 {
		additional = 0
	}
	return r.mutate(channelID, user, raidID, func(raid *entity.Raid) error {
		if raid.IndexOf(user.ID) >= 0 {
			return domain.ErrAlreadyJoined
		}
		raid.Attendees = append(raid.Attendees, entity.Attendee{
			User:       user.Clone(),
			Additional: additional,
		})
		return nil
	})
}

// RemoveAttendee drops the user from the raid.
func (r *Registry) RemoveAttendee(channelID string, user entity.User, raidID string) (*entity.Raid, error) {
	return r.mutate(channelID, user, raidID, func(raid *entity.Raid) error {
		i := raid.IndexOf(user.ID)
		if i < 0 {
			return domain.ErrNotAttending
		}
		raid.Attendees = append(raid.Attendees[:i], raid.Attendees[i+1:]...)
		return nil
	})
}

// SetArrived flags whether the user is at the gym. Only this raid's attendee
// entry changes.
func (r *Registry) SetArrived(channelID string, user entity.User, raidID string, arrived bool) (*entity.Raid, error) {
	return r.mutate(channelID, user, raidID, func(raid *entity.Raid) error {
		i := raid.IndexOf(user.ID)
		if i < 0 {
			return domain.ErrNotAttending
		}
		raid.Attendees[i].Arrived = arrived
		return nil
	})
}

// SetStartTime stores the start time as typed. It is only parsed when the
// raid is swept or displayed.
func (r *Registry) SetStartTime(channelID string, user entity.User, raidID, startTime string) (*entity.Raid, error) {
	return r.mutate(channelID, user, raidID, func(raid *entity.Raid) error {
		raid.StartTime = startTime
		return nil
	})
}

func (r *Registry) SetEndTime(channelID string, user entity.User, raidID, endTime string) (*entity.Raid, error) {
	return r.mutate(channelID, user, raidID, func(raid *entity.Raid) error {
		raid.EndTime = endTime
		return nil
	})
}

func (r *Registry) SetGym(channelID string, user entity.User, raidID string, gym *entity.Gym) (*entity.Raid, error) {
	return r.mutate(channelID, user, raidID, func(raid *entity.Raid) error {
		if gym == nil {
			raid.Gym = nil
			return nil
		}
		g := *gym
		raid.Gym = &g
		return nil
	})
}

// SetMessage remembers which chat message displays the raid.
func (r *Registry) SetMessage(channelID string, user entity.User, raidID string, ref entity.MessageRef) (*entity.Raid, error) {
	return r.mutate(channelID, user, raidID, func(raid *entity.Raid) error {
		raid.Message = &ref
		return nil
	})
}

// Message returns the chat message that displays the raid, if any.
func (r *Registry) Message(channelID string, user entity.User, raidID string) (*entity.MessageRef, bool) {
	raid, ok := r.Resolve(channelID, user, raidID)
	if !ok || raid.Message == nil {
		return nil, false
	}
	return raid.Message, true
}

// mutate resolves the raid and applies fn under the lock. The user's last raid
// only moves when fn succeeds, so a failed command leaves the registry as it
// was.
func (r *Registry) mutate(channelID string, user entity.User, raidID string, fn func(raid *entity.Raid) error) (*entity.Raid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raid := r.resolve(channelID, user, raidID)
	if raid == nil {
		return nil, domain.ErrRaidNotFound
	}
	if err := fn(raid); err != nil {
		return nil, err
	}
	r.lastRaid[user.ID] = raid.ID
	return raid.Clone(), nil
}

// Sweep evicts every raid that has expired at now and returns how many were
// removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := make(map[string]bool)
	for channelID, channel := range r.raids {
		for key, raid := range channel {
			if !r.expired(raid, now) {
				continue
			}
			delete(channel, key)
			evicted[raid.ID] = true
			r.logger.Debug("raid expired",
				slog.String("channel", channelID),
				slog.String("raid", raid.ID))
		}
	}

	// raid ids are never reused, so a last-raid entry pointing at an evicted
	// raid can never resolve again
	if len(evicted) > 0 {
		for userID, raidID := range r.lastRaid {
			if evicted[raidID] {
				delete(r.lastRaid, userID)
			}
		}
	}
	return len(evicted)
}

func (r *Registry) expired(raid *entity.Raid, now time.Time) bool {
	end, hasEnd := parseTimeOfDay(raid.EndTime, now)
	if hasEnd && now.After(end) {
		return true
	}

	start, hasStart := parseTimeOfDay(raid.StartTime, now)
	if r.expireOnStart && hasStart && now.After(start) {
		return true
	}

	// without start-time eviction a parsed start time says nothing about when
	// the raid is over
	return !hasEnd && (!hasStart || !r.expireOnStart) && now.After(raid.DefaultEndAt)
}
