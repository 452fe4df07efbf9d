package services

import (
	"context"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	"github.com/primeblocks/investment-backend/internal/dto"
)

// AdminSvcFacade covers the administrator-only surface: platform stats,
// manual balance adjustments, and global job settings.
type AdminSvcFacade interface {
	// Stats summarizes user totals and pending request counts.
	Stats(ctx context.Context) (*dto.AdminStatsResponse, error)

	// AdjustBalance applies a signed manual credit or debit to one account.
	AdjustBalance(ctx context.Context, userID, adminID string, req dto.AdjustBalanceRequest) error

	// ListSettings returns every admin setting.
	ListSettings(ctx context.Context) ([]domain.Setting, error)

	// UpdateSettings upserts the provided key/value pairs.
	UpdateSettings(ctx context.Context, adminID string, settings map[string]string) error
}
