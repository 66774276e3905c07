//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../../../mocks/mock_repo.go -package=mocks

package contract

import (
	"context"

	"github.com/diegoclair/raid-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Gym() GymRepo
}

// GymRepo defines the contract for the gym directory
type GymRepo interface {
	Create(gym *entity.Gym) error
	Update(gym *entity.Gym) error
	GetByName(name string) (*entity.Gym, error)
	Search(query string, limit int) ([]*entity.Gym, error)
	List() ([]*entity.Gym, error)
}
