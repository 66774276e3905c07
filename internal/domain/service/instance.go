package service

import (
	"log/slog"
	"time"

	"github.com/diegoclair/raid-bot/internal/domain/contract"
)

type Config struct {
	DefaultDuration   time.Duration
	SweepInterval     time.Duration
	ExpireOnStartTime bool
}

type Instance struct {
	Registry *Registry
	Raid     *raidService
	Sweeper  *sweeper
}

func NewInstance(log *slog.Logger, dm contract.DataManager, cfg Config) *Instance {
	registry := NewRegistry(log, RegistryConfig{
		DefaultDuration:   cfg.DefaultDuration,
		ExpireOnStartTime: cfg.ExpireOnStartTime,
	})

	return &Instance{
		Registry: registry,
		Raid:     newRaid(log, dm, registry),
		Sweeper:  newSweeper(log, registry, cfg.SweepInterval),
	}
}
