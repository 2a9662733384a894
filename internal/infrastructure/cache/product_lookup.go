package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/picking-scanner-api/internal/application/picking"
	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/pkg/logger"
)

var _ picking.ProductLookup = (*ProductLookupCache)(nil)

// Client subconjunto de redis.Cmdable que usa la caché.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// ProductLookupCache decora un ProductLookup guardando en Redis los productos encontrados.
// Los fallos (no encontrado, archivado) no se guardan para que un alta se vea en el siguiente escaneo.
// Un Redis caído degrada a la búsqueda directa. Un acierto puede estar desactualizado hasta el TTL
// (un producto archivado sigue resolviendo aquí); el escaneo confirma el estado por ID en su tx.
type ProductLookupCache struct {
	next   picking.ProductLookup
	client Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewProductLookupCache construye el decorador.
func NewProductLookupCache(next picking.ProductLookup, client Client, ttl time.Duration, log *logger.Logger) *ProductLookupCache {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductLookupCache{next: next, client: client, ttl: ttl, log: log.Component("product-cache")}
}

func productKey(companyID, barcode string) string {
	return fmt.Sprintf("scanner:product:%s:%s", companyID, barcode)
}

// FindByBarcodeWithInfo consulta Redis y, si no hay entrada, delega y guarda el resultado positivo.
func (c *ProductLookupCache) FindByBarcodeWithInfo(ctx context.Context, barcode, companyID string) (picking.ProductLookupResult, error) {
	key := productKey(companyID, barcode)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p entity.Product
		if jsonErr := json.Unmarshal(raw, &p); jsonErr == nil {
			return picking.ProductLookupResult{Product: &p}, nil
		}
		c.log.Warn().Str("key", key).Msg("entrada de caché corrupta, se ignora")
	case errors.Is(err, redis.Nil):
	default:
		c.log.Warn().Err(err).Str("key", key).Msg("redis no disponible, búsqueda directa")
	}

	res, err := c.next.FindByBarcodeWithInfo(ctx, barcode, companyID)
	if err != nil || res.Product == nil {
		return res, err
	}
	if data, jsonErr := json.Marshal(res.Product); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			c.log.Warn().Err(setErr).Str("key", key).Msg("no se pudo guardar en caché")
		}
	}
	return res, nil
}
