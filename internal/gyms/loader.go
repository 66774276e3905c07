// Package gyms seeds the gym directory from a YAML file.
package gyms

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/diegoclair/raid-bot/internal/domain/contract"
	"github.com/diegoclair/raid-bot/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout:
//
//	gyms:
//	  - name: Town Hall Fountain
//	    latitude: -23.5505
//	    longitude: -46.6333
type File struct {
	Gyms []Entry `yaml:"gyms"`
}

type Entry struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Parse decodes and validates a gym file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse gyms file: %w", err)
	}

	seen := make(map[string]bool, len(f.Gyms))
	for i, g := range f.Gyms {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return nil, fmt.Errorf("gym #%d has no name", i+1)
		}
		if g.Latitude < -90 || g.Latitude > 90 || g.Longitude < -180 || g.Longitude > 180 {
			return nil, fmt.Errorf("gym %q has invalid coordinates", name)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("gym %q is listed twice", name)
		}
		seen[key] = true
		f.Gyms[i].Name = name
	}

	return &f, nil
}

// LoadFile reads path and upserts every gym in a single transaction. It
// returns the number of gyms created and updated.
func LoadFile(ctx context.Context, log *slog.Logger, dm contract.DataManager, path string) (created, updated int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read gyms file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return 0, 0, err
	}

	created, updated, err = Import(ctx, dm, f.Gyms)
	if err != nil {
		return 0, 0, err
	}

	log.Info("gym directory loaded",
		slog.String("path", path),
		slog.Int("created", created),
		slog.Int("updated", updated))

	return created, updated, nil
}

// Import upserts gyms by name.
func Import(ctx context.Context, dm contract.DataManager, entries []Entry) (created, updated int, err error) {
	err = dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		created, updated = 0, 0
		for _, e := range entries {
			existing, err := tx.Gym().GetByName(e.Name)
			if err != nil {
				return err
			}

			if existing == nil {
				if err := tx.Gym().Create(&entity.Gym{
					Name:      e.Name,
					Latitude:  e.Latitude,
					Longitude: e.Longitude,
				}); err != nil {
					return err
				}
				created++
				continue
			}

			if existing.Latitude == e.Latitude && existing.Longitude == e.Longitude {
				continue
			}
			existing.Latitude = e.Latitude
			existing.Longitude = e.Longitude
			if err := tx.Gym().Update(existing); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	return created, updated, err
}
