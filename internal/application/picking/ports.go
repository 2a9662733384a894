package picking

import (
	"context"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/internal/domain/gs1"
	"github.com/jhoicas/picking-scanner-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Pickings  repository.PickingRepository
	Moves     repository.MoveRepository
	MoveLines repository.MoveLineRepository
	Lots      repository.LotRepository
	Locations repository.LocationRepository
	Products  repository.ProductRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Cada escaneo es una única transacción: Commit si fn no falla, Rollback en otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

// ProductLookupResult respuesta de la búsqueda de producto por código: Product o un detalle de error.
type ProductLookupResult struct {
	Product *entity.Product
	Error   string
}

// ProductLookup servicio de búsqueda de producto por código de barras acotado a la empresa.
type ProductLookup interface {
	FindByBarcodeWithInfo(ctx context.Context, barcode, companyID string) (ProductLookupResult, error)
}

// GS1Decoder decodificador de códigos GS1-128. Devuelve un Result vacío si el código no es GS1.
type GS1Decoder interface {
	Parse(barcode string) gs1.Result
}
