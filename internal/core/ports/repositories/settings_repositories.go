package repositories

import (
	"context"

	"github.com/primeblocks/investment-backend/internal/core/domain"
)

// SettingsRepository stores global admin settings as key/value pairs.
type SettingsRepository interface {
	// GetAllSettings returns every setting as a key -> value map. The profit
	// job reads this once at the start of a run.
	GetAllSettings(ctx context.Context) (map[string]string, error)

	// ListSettings returns full setting records for the admin surface.
	ListSettings(ctx context.Context) ([]domain.Setting, error)

	// UpsertSetting creates or replaces one setting.
	UpsertSetting(ctx context.Context, setting domain.Setting) error
}
