package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/raid-bot/internal/domain"
	"github.com/diegoclair/raid-bot/internal/domain/entity"
)

type roleLister interface {
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
}

// FactionResolver maps factions onto guild roles of the same name.
type FactionResolver struct {
	roles roleLister
}

func NewFactionResolver(roles roleLister) *FactionResolver {
	return &FactionResolver{roles: roles}
}

func (r *FactionResolver) ResolveFaction(ctx context.Context, guildID, name string) (entity.Faction, error) {
	roles, err := r.roles.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return entity.Faction{}, fmt.Errorf("failed to list roles of guild %s: %w", guildID, err)
	}

	for _, role := range roles {
		if strings.EqualFold(role.Name, name) {
			return entity.Faction{Name: name, RoleID: role.ID}, nil
		}
	}
	return entity.Faction{}, domain.ErrFactionMissing
}
