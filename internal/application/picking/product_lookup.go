package picking

import (
	"context"
	"fmt"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/internal/domain/gs1"
	"github.com/jhoicas/picking-scanner-api/internal/domain/repository"
)

// ProductLookupService resuelve productos por código de barras sobre ProductRepository.
type ProductLookupService struct {
	repo repository.ProductRepository
}

// NewProductLookupService construye el servicio.
func NewProductLookupService(repo repository.ProductRepository) *ProductLookupService {
	return &ProductLookupService{repo: repo}
}

// FindByBarcodeWithInfo devuelve el primer producto activo con ese código. Un GTIN con ceros a la
// izquierda también encuentra el producto dado de alta con su forma corta (EAN-13, UPC-A, EAN-8).
// Si no hay ninguno, Error explica por qué (inexistente o archivado). Solo los fallos de
// infraestructura son error.
func (s *ProductLookupService) FindByBarcodeWithInfo(ctx context.Context, barcode, companyID string) (ProductLookupResult, error) {
	var list []*entity.Product
	for _, code := range gs1.GTINVariants(barcode) {
		found, err := s.repo.FindByBarcode(ctx, companyID, code)
		if err != nil {
			return ProductLookupResult{}, err
		}
		if len(found) > 0 {
			list = found
			break
		}
	}
	if len(list) == 0 {
		return ProductLookupResult{Error: fmt.Sprintf("No product found for barcode: %s", barcode)}, nil
	}
	for _, p := range list {
		if p.Active {
			return ProductLookupResult{Product: p}, nil
		}
	}
	return ProductLookupResult{Error: fmt.Sprintf("Product %s is archived.", list[0].DisplayName())}, nil
}
