package entity

// Location ubicación de stock identificable por código de barras.
type Location struct {
	ID           string
	CompanyID    string // "" = compartida
	Name         string
	CompleteName string // ruta completa, ej. WH/Stock/Estante 1
	Barcode      string
	Active       bool
}

// DisplayName nombre para mostrar en notificaciones.
func (l *Location) DisplayName() string {
	if l.CompleteName != "" {
		return l.CompleteName
	}
	return l.Name
}
