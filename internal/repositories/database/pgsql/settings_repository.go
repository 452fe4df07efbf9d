package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
)

type PgxSettingsRepository struct {
	db *pgxpool.Pool
}

func newPgxSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{db: db}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) GetAllSettings(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value FROM admin_settings;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting row: %w", err)
		}
		settings[key] = value
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating setting rows: %w", rows.Err())
	}
	return settings, nil
}

func (r *PgxSettingsRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value, updated_at, COALESCE(updated_by::text, '') FROM admin_settings ORDER BY key;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := []domain.Setting{}
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt, &s.UpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan setting row: %w", err)
		}
		settings = append(settings, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating setting rows: %w", rows.Err())
	}
	return settings, nil
}

func (r *PgxSettingsRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	query := `
        INSERT INTO admin_settings (key, value, updated_at, updated_by)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (key) DO UPDATE SET
            value = EXCLUDED.value,
            updated_at = EXCLUDED.updated_at,
            updated_by = EXCLUDED.updated_by;
    `
	_, err := r.db.Exec(ctx, query, setting.Key, setting.Value, setting.UpdatedAt, setting.UpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", setting.Key, err)
	}
	return nil
}
