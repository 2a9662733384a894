package entity

// ScanResult resultado de procesar un escaneo: exactamente una de ScanSuccess, ScanWarning o ScanError.
type ScanResult interface {
	scanResult()
}

// ScanSuccess el escaneo tuvo efecto.
type ScanSuccess struct {
	Title   string
	Message string
}

// ScanWarning el escaneo fue rechazado sin efectos (estado terminal, no encontrado o política).
type ScanWarning struct {
	Title   string
	Message string
}

// ScanError el escaneo no pudo procesarse (picking inexistente).
type ScanError struct {
	Message string
}

func (ScanSuccess) scanResult() {}
func (ScanWarning) scanResult() {}
func (ScanError) scanResult()   {}
