package dto

// OpcionGeo un par id/nombre para llenar los selects del formulario de dirección.
type OpcionGeo struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
