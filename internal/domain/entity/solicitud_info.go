package entity

import "time"

// SolicitudInfo petición de información/precio de un producto que no muestra
// precio público (mostrar_precio = false o formulario habilitado).
type SolicitudInfo struct {
	ID                int64
	ProductID         string
	NombreSolicitante string
	Email             string
	Comentario        string
	CreadoEn          time.Time
}
