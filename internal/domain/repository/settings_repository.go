package repository

import (
	"context"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
)

// SettingsRepository lee y guarda los parámetros del escáner.
type SettingsRepository interface {
	Get(ctx context.Context) (entity.ScannerSettings, error)
	Save(ctx context.Context, settings entity.ScannerSettings) error
}
