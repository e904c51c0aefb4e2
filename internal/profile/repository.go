// internal/profile/repository.go

package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines the profile repository interface
type Repository interface {
	GetProfile(ctx context.Context, id string) (*Profile, error)
	GetCoupleProfiles(ctx context.Context, coupleID string) ([]*Profile, error)
	SaveProfile(ctx context.Context, p *Profile) error
}

// postgresRepository implements Repository using PostgreSQL
type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// profileRow mirrors the partner_profiles table; text[] columns need pq arrays
type profileRow struct {
	ID                string             `db:"id"`
	CoupleID          string             `db:"couple_id"`
	Name              string             `db:"name"`
	Interests         pq.StringArray     `db:"interests"`
	FavoriteDateTypes pq.StringArray     `db:"favorite_date_types"`
	Personality       Personality        `db:"personality"`
	LoveLanguages     LoveLanguageScores `db:"love_languages"`
	Triggers          pq.StringArray     `db:"triggers"`
	Sensitivities     pq.StringArray     `db:"sensitivities"`
	SocialAbility     SocialAbility      `db:"social_ability"`
	MobilityLevel     MobilityLevel      `db:"mobility_level"`
	Disabilities      pq.StringArray     `db:"disabilities"`
	Budget            BudgetCeilings     `db:"budget"`
	IsLongDistance    bool               `db:"is_long_distance"`
	CreatedAt         time.Time          `db:"created_at"`
	UpdatedAt         time.Time          `db:"updated_at"`
}

func (r profileRow) toProfile() *Profile {
	return &Profile{
		ID:                r.ID,
		CoupleID:          r.CoupleID,
		Name:              r.Name,
		Interests:         []string(r.Interests),
		FavoriteDateTypes: []string(r.FavoriteDateTypes),
		Personality:       r.Personality,
		LoveLanguages:     r.LoveLanguages,
		Triggers:          []string(r.Triggers),
		Sensitivities:     []string(r.Sensitivities),
		SocialAbility:     r.SocialAbility,
		MobilityLevel:     r.MobilityLevel,
		Disabilities:      []string(r.Disabilities),
		Budget:            r.Budget,
		IsLongDistance:    r.IsLongDistance,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

const profileColumns = `
	id, couple_id, name, interests, favorite_date_types, personality,
	love_languages, triggers, sensitivities, social_ability, mobility_level,
	disabilities, budget, is_long_distance, created_at, updated_at`

// GetProfile retrieves a single partner profile
func (r *postgresRepository) GetProfile(ctx context.Context, id string) (*Profile, error) {
	var row profileRow
	query := `SELECT ` + profileColumns + ` FROM partner_profiles WHERE id = $1`

	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return row.toProfile(), nil
}

// GetCoupleProfiles retrieves both partners of a couple, oldest first
func (r *postgresRepository) GetCoupleProfiles(ctx context.Context, coupleID string) ([]*Profile, error) {
	var rows []profileRow
	query := `SELECT ` + profileColumns + ` FROM partner_profiles
		WHERE couple_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT 2`

	if err := r.db.SelectContext(ctx, &rows, query, coupleID); err != nil {
		return nil, fmt.Errorf("failed to get couple profiles: %w", err)
	}

	profiles := make([]*Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, row.toProfile())
	}
	return profiles, nil
}

// SaveProfile inserts or updates a partner profile
func (r *postgresRepository) SaveProfile(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO partner_profiles (
			id, couple_id, name, interests, favorite_date_types, personality,
			love_languages, triggers, sensitivities, social_ability, mobility_level,
			disabilities, budget, is_long_distance
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			interests = EXCLUDED.interests,
			favorite_date_types = EXCLUDED.favorite_date_types,
			personality = EXCLUDED.personality,
			love_languages = EXCLUDED.love_languages,
			triggers = EXCLUDED.triggers,
			sensitivities = EXCLUDED.sensitivities,
			social_ability = EXCLUDED.social_ability,
			mobility_level = EXCLUDED.mobility_level,
			disabilities = EXCLUDED.disabilities,
			budget = EXCLUDED.budget,
			is_long_distance = EXCLUDED.is_long_distance,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(
		ctx, query,
		p.ID, p.CoupleID, p.Name,
		pq.Array(p.Interests), pq.Array(p.FavoriteDateTypes),
		p.Personality, p.LoveLanguages,
		pq.Array(p.Triggers), pq.Array(p.Sensitivities),
		p.SocialAbility, p.MobilityLevel,
		pq.Array(p.Disabilities), p.Budget, p.IsLongDistance,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}
