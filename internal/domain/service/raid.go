package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/diegoclair/raid-bot/internal/domain"
	"github.com/diegoclair/raid-bot/internal/domain/contract"
	"github.com/diegoclair/raid-bot/internal/domain/entity"
)

type raidService struct {
	dm       contract.DataManager
	registry *Registry
	factions *factionCache
	logger   *slog.Logger
}

func newRaid(log *slog.Logger, dm contract.DataManager, registry *Registry) *raidService {
	return &raidService{
		dm:       dm,
		registry: registry,
		factions: newFactionCache(log),
		logger:   log.With(slog.String("service", "raid")),
	}
}

// RegisterFactionResolver enables faction markers for channels of a platform.
func (s *raidService) RegisterFactionResolver(platform string, resolver contract.FactionResolver) {
	s.factions.register(platform, resolver)
}

// CreateRaid expects the raid boss first, then an optional end time.
// Tokens shaped like key=value are kept on the raid as payload.
func (s *raidService) CreateRaid(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error) {
	var (
		payload map[string]string
		rest    []string
	)
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if ok && key != "" {
			if payload == nil {
				payload = make(map[string]string)
			}
			payload[strings.ToLower(key)] = value
			continue
		}
		rest = append(rest, arg)
	}

	if len(rest) == 0 {
		return nil, domain.ErrMissingSubject
	}

	// warm the faction cache so the first card already shows team markers
	s.factions.Get(ctx, ch)

	raid := s.registry.Create(ch.Key(), user, entity.NewRaid{
		Subject: strings.ToLower(rest[0]),
		EndTime: strings.Join(rest[1:], " "),
		Payload: payload,
	})

	s.logger.Info("raid created",
		slog.String("channel", ch.Key()),
		slog.String("raid", raid.ID),
		slog.String("user", user.ID))

	return raid, nil
}

// Join accepts an optional raid id and an optional guest count ("+2" or "2").
func (s *raidService) Join(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error) {
	raid, rest, err := s.registry.ResolveArgs(ch.Key(), user, args)
	if err != nil {
		return nil, err
	}

	additional := 0
	for _, arg := range rest {
		if n, ok := parseGuests(arg); ok {
			additional = n
			break
		}
	}

	return s.registry.AddAttendee(ch.Key(), user, raid.ID, additional)
}

func (s *raidService) Leave(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error) {
	raid, _, err := s.registry.ResolveArgs(ch.Key(), user, args)
	if err != nil {
		return nil, err
	}
	return s.registry.RemoveAttendee(ch.Key(), user, raid.ID)
}

func (s *raidService) Arrive(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error) {
	raid, _, err := s.registry.ResolveArgs(ch.Key(), user, args)
	if err != nil {
		return nil, err
	}
	return s.registry.SetArrived(ch.Key(), user, raid.ID, true)
}

func (s *raidService) SetStart(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error) {
	raid, value, err := s.resolveWithValue(ch, user, args, domain.ErrMissingTime)
	if err != nil {
		return nil, err
	}
	return s.registry.SetStartTime(ch.Key(), user, raid.ID, value)
}

func (s *raidService) SetEnd(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error) {
	raid, value, err := s.resolveWithValue(ch, user, args, domain.ErrMissingTime)
	if err != nil {
		return nil, err
	}
	return s.registry.SetEndTime(ch.Key(), user, raid.ID, value)
}

// SetLocation treats every token that is not a raid id as part of the gym
// name.
func (s *raidService) SetLocation(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error) {
	raid, name, err := s.resolveWithValue(ch, user, args, domain.ErrMissingGym)
	if err != nil {
		return nil, err
	}

	gym, err := s.findGym(name)
	if err != nil {
		return nil, err
	}

	return s.registry.SetGym(ch.Key(), user, raid.ID, gym)
}

func (s *raidService) Info(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error) {
	raid, _, err := s.registry.ResolveArgs(ch.Key(), user, args)
	if err != nil {
		return nil, err
	}
	return raid, nil
}

func (s *raidService) List(ctx context.Context, ch entity.Channel) []*entity.Raid {
	return s.registry.List(ch.Key())
}

func (s *raidService) AttachMessage(ch entity.Channel, user entity.User, raidID string, ref entity.MessageRef) error {
	_, err := s.registry.SetMessage(ch.Key(), user, raidID, ref)
	return err
}

func (s *raidService) Factions(ctx context.Context, ch entity.Channel) []entity.Faction {
	return s.factions.Get(ctx, ch)
}

func (s *raidService) resolveWithValue(ch entity.Channel, user entity.User, args []string, missing error) (*entity.Raid, string, error) {
	raid, rest, err := s.registry.ResolveArgs(ch.Key(), user, args)
	if err != nil {
		return nil, "", err
	}
	value := strings.TrimSpace(strings.Join(rest, " "))
	if value == "" {
		return nil, "", missing
	}
	return raid, value, nil
}

// findGym prefers an exact name match and falls back to the first partial one.
func (s *raidService) findGym(name string) (*entity.Gym, error) {
	gym, err := s.dm.Gym().GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get gym: %w", err)
	}
	if gym != nil {
		return gym, nil
	}

	gyms, err := s.dm.Gym().Search(name, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to search gyms: %w", err)
	}
	if len(gyms) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrGymNotFound, name)
	}
	return gyms[0], nil
}

func parseGuests(arg string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(arg, "+"))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
