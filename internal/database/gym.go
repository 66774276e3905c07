package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/diegoclair/raid-bot/internal/domain/contract"
	"github.com/diegoclair/raid-bot/internal/domain/entity"
)

type gymRepo struct {
	db dbConn
}

func newGymRepo(db dbConn) contract.GymRepo {
	return &gymRepo{db: db}
}

func (r *gymRepo) Create(gym *entity.Gym) error {
	query := `
		INSERT INTO gyms (name, latitude, longitude)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query,
		gym.Name,
		gym.Latitude,
		gym.Longitude,
	)
	if err != nil {
		return fmt.Errorf("failed to create gym: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	gym.ID = id
	return nil
}

func (r *gymRepo) Update(gym *entity.Gym) error {
	query := `
		UPDATE gyms SET
			name = ?,
			latitude = ?,
			longitude = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		gym.Name,
		gym.Latitude,
		gym.Longitude,
		gym.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update gym: %w", err)
	}

	return nil
}

// GetByName matches the gym name ignoring case.
func (r *gymRepo) GetByName(name string) (*entity.Gym, error) {
	gym := &entity.Gym{}
	query := `
		SELECT id, name, latitude, longitude, created_at
		FROM gyms
		WHERE name = ? COLLATE NOCASE
	`

	err := r.db.QueryRow(query, strings.TrimSpace(name)).Scan(
		&gym.ID,
		&gym.Name,
		&gym.Latitude,
		&gym.Longitude,
		&gym.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gym: %w", err)
	}

	return gym, nil
}

// Search returns gyms whose name contains the query, shortest names first so
// "park" finds "Park" before "Parkside Fountain".
func (r *gymRepo) Search(query string, limit int) ([]*entity.Gym, error) {
	if limit <= 0 {
		limit = 10
	}

	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"
	rows, err := r.db.Query(`
		SELECT id, name, latitude, longitude, created_at
		FROM gyms
		WHERE name LIKE ? ESCAPE '\'
		ORDER BY length(name), name
		LIMIT ?
	`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search gyms: %w", err)
	}
	defer rows.Close()

	return scanGyms(rows)
}

func (r *gymRepo) List() ([]*entity.Gym, error) {
	rows, err := r.db.Query(`
		SELECT id, name, latitude, longitude, created_at
		FROM gyms
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list gyms: %w", err)
	}
	defer rows.Close()

	return scanGyms(rows)
}

func scanGyms(rows *sql.Rows) ([]*entity.Gym, error) {
	var gyms []*entity.Gym
	for rows.Next() {
		gym := &entity.Gym{}
		err := rows.Scan(
			&gym.ID,
			&gym.Name,
			&gym.Latitude,
			&gym.Longitude,
			&gym.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gym: %w", err)
		}
		gyms = append(gyms, gym)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate gyms: %w", err)
	}

	return gyms, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
