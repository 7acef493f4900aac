package checkout

// Estado de un intento de checkout. La máquina avanza en secuencia estricta;
// cualquier paso Creando* puede caer a Fallido y la validación a Rechazado.
// Ningún paso se reintenta solo: el cliente debe volver a enviar.
type Estado int

const (
	EstadoInactivo Estado = iota
	EstadoValidando
	EstadoCreandoDireccion
	EstadoCreandoOrden
	EstadoCreandoDetalles
	EstadoCompletado
	EstadoRechazado
	EstadoFallido
)

func (e Estado) String() string {
	switch e {
	case EstadoInactivo:
		return "inactivo"
	case EstadoValidando:
		return "validando"
	case EstadoCreandoDireccion:
		return "creando_direccion"
	case EstadoCreandoOrden:
		return "creando_orden"
	case EstadoCreandoDetalles:
		return "creando_detalles"
	case EstadoCompletado:
		return "completado"
	case EstadoRechazado:
		return "rechazado"
	case EstadoFallido:
		return "fallido"
	default:
		return "desconocido"
	}
}
