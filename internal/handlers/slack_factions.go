package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/raid-bot/internal/domain"
	"github.com/diegoclair/raid-bot/internal/domain/contract"
	"github.com/diegoclair/raid-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// SlackFactionResolver maps factions to workspace user groups named after
// them, by name or handle.
type SlackFactionResolver struct {
	slackClient contract.SlackClient
}

func NewSlackFactionResolver(slackClient contract.SlackClient) *SlackFactionResolver {
	return &SlackFactionResolver{slackClient: slackClient}
}

func (r *SlackFactionResolver) ResolveFaction(ctx context.Context, teamID, name string) (entity.Faction, error) {
	groups, err := r.slackClient.GetUserGroupsContext(ctx, slack.GetUserGroupsOptionIncludeUsers(true))
	if err != nil {
		return entity.Faction{}, fmt.Errorf("failed to get user groups: %w", err)
	}

	for _, g := range groups {
		if strings.EqualFold(g.Name, name) || strings.EqualFold(g.Handle, name) {
			return entity.Faction{
				Name:      name,
				RoleID:    g.ID,
				MemberIDs: g.Users,
			}, nil
		}
	}

	return entity.Faction{}, domain.ErrFactionMissing
}
