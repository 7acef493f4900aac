package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado    = errors.New("usuario no encontrado")
	ErrEmailYaRegistrado      = errors.New("el email ya está registrado")
	ErrCIYaRegistrado         = errors.New("el C.I. ya está registrado")
	ErrEntradaInvalida        = errors.New("entrada inválida")
	ErrDuplicado              = errors.New("recurso duplicado")
	ErrNoAutorizado           = errors.New("no autorizado")
	ErrAccesoDenegado         = errors.New("acceso denegado")
	ErrSesionInvalida         = errors.New("sesión inválida, vuelve a iniciar sesión")
	ErrStockInsuficiente      = errors.New("stock insuficiente")
	ErrCantidadInvalida       = errors.New("la cantidad debe ser mayor que cero")
	ErrDatosProductoFaltantes = errors.New("faltan datos del producto (nombre o precio)")
	ErrAlmacenNoDisponible    = errors.New("no se pudo persistir el carrito")
	ErrCarritoVacio           = errors.New("el carrito está vacío")
)
