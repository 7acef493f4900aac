package entity

// Direccion de entrega. Se crea una fila nueva en cada checkout; este flujo no
// reutiliza direcciones anteriores.
type Direccion struct {
	ID                  int64
	IDUsuario           string
	IDLocalidad         int64
	IDZona              *int64 // opcional
	CalleAvenida        string
	NumeroCasaEdificio  string // opcional; "S/N" en la factura si falta
	ReferenciaAdicional string
}
