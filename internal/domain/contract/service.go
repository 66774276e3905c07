//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../../mocks/mock_service.go -package=mocks

package contract

import (
	"context"

	"github.com/diegoclair/raid-bot/internal/domain/entity"
)

// RaidService is what chat adapters call for every raid command. Arguments
// are the raw command tokens after the command name; an optional raid id may
// appear anywhere among them.
type RaidService interface {
	CreateRaid(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error)
	Join(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error)
	Leave(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error)
	Arrive(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error)
	SetStart(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error)
	SetEnd(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error)
	SetLocation(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error)
	Info(ctx context.Context, ch entity.Channel, user entity.User, args []string) (*entity.Raid, error)
	List(ctx context.Context, ch entity.Channel) []*entity.Raid
	AttachMessage(ch entity.Channel, user entity.User, raidID string, ref entity.MessageRef) error
	Factions(ctx context.Context, ch entity.Channel) []entity.Faction
}

// FactionResolver looks up a faction by name on a chat platform
type FactionResolver interface {
	ResolveFaction(ctx context.Context, teamID, name string) (entity.Faction, error)
}
