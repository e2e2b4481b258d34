package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/taper/internal/db"
	"github.com/alexanderramin/taper/internal/domain"
)

// Blob keys. One row per record in state_blobs.
const (
	keyTrainingPlan = "training_plan"
	keyOnboarding   = "onboarding_data"
)

// SQLiteStateRepo implements StateStore over a SQLite blob table. Records
// are stored as JSON text; date fields re-hydrate through the standard
// RFC 3339 encoding of time.Time.
type SQLiteStateRepo struct {
	db db.DBTX
}

// NewSQLiteStateRepo creates a StateStore backed by conn.
func NewSQLiteStateRepo(conn db.DBTX) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: conn}
}

func (r *SQLiteStateRepo) LoadPlan(ctx context.Context) (*domain.TrainingPlan, error) {
	var plan domain.TrainingPlan
	ok, err := r.load(ctx, keyTrainingPlan, &plan)
	if err != nil || !ok {
		return nil, err
	}
	return &plan, nil
}

func (r *SQLiteStateRepo) SavePlan(ctx context.Context, plan *domain.TrainingPlan) error {
	return r.save(ctx, keyTrainingPlan, plan)
}

func (r *SQLiteStateRepo) DeletePlan(ctx context.Context) error {
	return r.delete(ctx, keyTrainingPlan)
}

func (r *SQLiteStateRepo) LoadOnboarding(ctx context.Context) (*domain.OnboardingData, error) {
	var data domain.OnboardingData
	ok, err := r.load(ctx, keyOnboarding, &data)
	if err != nil || !ok {
		return nil, err
	}
	return &data, nil
}

func (r *SQLiteStateRepo) SaveOnboarding(ctx context.Context, data *domain.OnboardingData) error {
	return r.save(ctx, keyOnboarding, data)
}

func (r *SQLiteStateRepo) DeleteOnboarding(ctx context.Context) error {
	return r.delete(ctx, keyOnboarding)
}

// load reports whether the record existed and decoded cleanly. A corrupt
// blob reads as absent.
func (r *SQLiteStateRepo) load(ctx context.Context, key string, dst any) (bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM state_blobs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *SQLiteStateRepo) save(ctx context.Context, key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO state_blobs (key, value, updated_at) VALUES (?, ?, ?)`,
		key, string(value), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteStateRepo) delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM state_blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}
