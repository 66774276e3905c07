package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/diegoclair/raid-bot/internal/domain"
	"github.com/diegoclair/raid-bot/internal/domain/contract"
	"github.com/diegoclair/raid-bot/internal/domain/entity"
	"golang.org/x/sync/singleflight"
)

// factionCache resolves each team's factions once per process. Team rosters
// are assumed static; Refresh drops a team so the next lookup asks the
// platform again.
type factionCache struct {
	resolvers map[string]contract.FactionResolver // by platform
	group     singleflight.Group
	mu        sync.Mutex
	teams     map[string][]entity.Faction
	logger    *slog.Logger
}

func newFactionCache(log *slog.Logger) *factionCache {
	return &factionCache{
		resolvers: make(map[string]contract.FactionResolver),
		teams:     make(map[string][]entity.Faction),
		logger:    log.With(slog.String("service", "factions")),
	}
}

func (c *factionCache) register(platform string, resolver contract.FactionResolver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolvers[platform] = resolver
}

func (c *factionCache) Get(ctx context.Context, ch entity.Channel) []entity.Faction {
	key := ch.TeamKey()

	c.mu.Lock()
	factions, ok := c.teams[key]
	resolver := c.resolvers[ch.Platform]
	c.mu.Unlock()

	if ok || resolver == nil {
		return factions
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		factions, complete := c.resolve(ctx, resolver, ch.TeamID)
		if complete {
			c.mu.Lock()
			c.teams[key] = factions
			c.mu.Unlock()
		}
		return factions, nil
	})
	return v.([]entity.Faction)
}

// resolve looks every faction up. The result is complete unless the platform
// failed; a faction the team simply does not have is not a failure.
func (c *factionCache) resolve(ctx context.Context, resolver contract.FactionResolver, teamID string) ([]entity.Faction, bool) {
	complete := true
	factions := make([]entity.Faction, 0, len(domain.Factions))
	for _, name := range domain.Factions {
		faction, err := resolver.ResolveFaction(ctx, teamID, name)
		if errors.Is(err, domain.ErrFactionMissing) {
			continue
		}
		if err != nil {
			c.logger.Warn("failed to resolve faction",
				slog.String("team", teamID),
				slog.String("faction", name),
				slog.Any("error", err))
			complete = false
			continue
		}
		factions = append(factions, faction)
	}
	return factions, complete
}

func (c *factionCache) Refresh(ch entity.Channel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.teams, ch.TeamKey())
}
