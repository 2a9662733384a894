package usecase

import (
	"context"

	"github.com/jhoicas/picking-scanner-api/internal/application/dto"
	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/internal/domain/repository"
)

// SettingsUseCase lectura y actualización de los parámetros del escáner.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve los parámetros vigentes.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.ScannerSettingsResponse, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// Update aplica solo los campos informados y guarda el resultado completo.
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateScannerSettingsRequest) (*dto.ScannerSettingsResponse, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if in.AllowNewProducts != nil {
		s.AllowNewProducts = *in.AllowNewProducts
	}
	if in.AllowOverage != nil {
		s.AllowOverage = *in.AllowOverage
	}
	if in.AutoValidate != nil {
		s.AutoValidate = *in.AutoValidate
	}
	if in.RequireLocation != nil {
		s.RequireLocation = *in.RequireLocation
	}
	if in.AutoIncrement != nil {
		s.AutoIncrement = *in.AutoIncrement
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

func toSettingsResponse(s entity.ScannerSettings) *dto.ScannerSettingsResponse {
	return &dto.ScannerSettingsResponse{
		AllowNewProducts: s.AllowNewProducts,
		AllowOverage:     s.AllowOverage,
		AutoValidate:     s.AutoValidate,
		RequireLocation:  s.RequireLocation,
		AutoIncrement:    s.AutoIncrement,
	}
}
