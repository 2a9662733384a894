package dto

import "github.com/jhoicas/picking-scanner-api/internal/domain/entity"

// ScanRequest body para POST /api/pickings/{id}/scan.
type ScanRequest struct {
	Barcode string `json:"barcode"`
}

// MoveLineScanRequest body para POST /api/move-lines/scan.
type MoveLineScanRequest struct {
	PickingID string `json:"picking_id"`
	Barcode   string `json:"barcode"`
}

// Notification título y mensaje para la pantalla del escáner.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ScanResponse exactamente una de las tres claves viene informada.
type ScanResponse struct {
	Success *Notification `json:"success,omitempty"`
	Warning *Notification `json:"warning,omitempty"`
	Error   *string       `json:"error,omitempty"`
}

// ToScanResponse convierte el resultado del dominio a su forma JSON.
func ToScanResponse(r entity.ScanResult) ScanResponse {
	switch v := r.(type) {
	case entity.ScanSuccess:
		return ScanResponse{Success: &Notification{Title: v.Title, Message: v.Message}}
	case entity.ScanWarning:
		return ScanResponse{Warning: &Notification{Title: v.Title, Message: v.Message}}
	case entity.ScanError:
		msg := v.Message
		return ScanResponse{Error: &msg}
	}
	msg := "Unknown scan result"
	return ScanResponse{Error: &msg}
}
