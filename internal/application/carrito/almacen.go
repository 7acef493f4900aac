package carrito

import (
	domcarrito "github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
)

// Almacen puerto de persistencia del carrito: una entrada serializada por
// clave (una por navegador/usuario). Cada mutación sobreescribe la entrada
// completa; el contrato de ida y vuelta exige que serializar y deserializar
// reproduzca la misma lista en el mismo orden.
type Almacen interface {
	// Cargar devuelve las líneas guardadas bajo la clave, o lista vacía si no
	// hay entrada. Un contenido corrupto también carga como lista vacía.
	Cargar(clave string) ([]domcarrito.Linea, error)
	// Guardar sobreescribe la entrada completa.
	Guardar(clave string, lineas []domcarrito.Linea) error
	// Eliminar borra la entrada (vaciar carrito).
	Eliminar(clave string) error
}

// Observador recibe el estado del carrito después de cada mutación persistida
// (la señal de refresco que antes disparaba el re-render del panel).
type Observador func(clave string, lineas []domcarrito.Linea)
