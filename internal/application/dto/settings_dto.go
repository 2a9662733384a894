package dto

// ScannerSettingsResponse parámetros vigentes del escáner.
type ScannerSettingsResponse struct {
	AllowNewProducts bool `json:"allow_new_products"`
	AllowOverage     bool `json:"allow_overage"`
	AutoValidate     bool `json:"auto_validate"`
	RequireLocation  bool `json:"require_location"`
	AutoIncrement    bool `json:"auto_increment"`
}

// UpdateScannerSettingsRequest actualización parcial: solo se cambian los campos presentes.
type UpdateScannerSettingsRequest struct {
	AllowNewProducts *bool `json:"allow_new_products,omitempty"`
	AllowOverage     *bool `json:"allow_overage,omitempty"`
	AutoValidate     *bool `json:"auto_validate,omitempty"`
	RequireLocation  *bool `json:"require_location,omitempty"`
	AutoIncrement    *bool `json:"auto_increment,omitempty"`
}
