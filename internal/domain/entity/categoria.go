package entity

// Categoria agrupa productos del catálogo. El parámetro ?categoria= de la
// tienda navega por nombre, no por id.
type Categoria struct {
	ID     int64
	Nombre string
}
