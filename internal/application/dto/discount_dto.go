package dto

// ApplyCodeRequest entrada para aplicar un código promo o de referido.
type ApplyCodeRequest struct {
	Code string `json:"code"`
}

// AppliedCodeResponse código aceptado, con su etiqueta para mostrar.
type AppliedCodeResponse struct {
	Code  string `json:"code"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

// ActiveCodesResponse códigos activos actuales (vacío = ninguno).
type ActiveCodesResponse struct {
	Promo    string `json:"promo_code"`
	Referral string `json:"referral_code"`
}
