package entity

// Claves de parámetros de configuración del escáner (tabla config_parameters).
const (
	ParamAllowNewProducts = "barcode_scanner_stock.allow_new_products"
	ParamAllowOverage     = "barcode_scanner_stock.allow_overage"
	ParamAutoValidate     = "barcode_scanner_stock.auto_validate"
	ParamRequireLocation  = "barcode_scanner_stock.require_location"
	ParamAutoIncrement    = "barcode_scanner.auto_increment"
)

// ScannerSettings configuración inmutable que se lee una vez por escaneo y se pasa por valor.
type ScannerSettings struct {
	AllowNewProducts bool // permite crear movimientos para productos no esperados
	AllowOverage     bool // permite validar con cantidades por encima de lo planificado
	AutoValidate     bool // valida el picking cuando todo está escaneado
	RequireLocation  bool // exige escanear una ubicación antes de productos/lotes
	AutoIncrement    bool // suma 1 por escaneo; si no, fija la cantidad en 1
}

// DefaultScannerSettings valores por defecto de los parámetros.
func DefaultScannerSettings() ScannerSettings {
	return ScannerSettings{AutoIncrement: true}
}
