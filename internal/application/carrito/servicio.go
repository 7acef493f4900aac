package carrito

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-natural-api/internal/domain"
	domcarrito "github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
	"github.com/jhoicas/tienda-natural-api/pkg/logger"
)

// Servicio reglas de negocio del carrito sobre un Almacen inyectado. Cada
// mutación sigue el mismo ciclo: cargar → mutar en memoria → persistir →
// notificar. Si la persistencia falla, el estado guardado no cambia y el error
// se propaga; nada se traga en silencio.
//
// Las mutaciones de una misma clave se serializan con un lock por clave:
// un doble clic rápido no puede intercalar dos ciclos cargar/guardar.
type Servicio struct {
	almacen Almacen
	stock   domcarrito.VerificadorStock // opcional, nil = sin tope
	log     *logger.Logger

	mu           sync.Mutex
	porClave     map[string]*sync.Mutex
	observadores []Observador
}

// NewServicio construye el servicio. stock puede ser nil.
func NewServicio(almacen Almacen, stock domcarrito.VerificadorStock, log *logger.Logger) *Servicio {
	if log == nil {
		log = logger.Nop()
	}
	return &Servicio{
		almacen:  almacen,
		stock:    stock,
		log:      log,
		porClave: map[string]*sync.Mutex{},
	}
}

// Suscribir registra un observador que se invoca tras cada mutación persistida.
func (s *Servicio) Suscribir(obs Observador) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observadores = append(s.observadores, obs)
}

func (s *Servicio) lockDe(clave string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.porClave[clave]
	if !ok {
		l = &sync.Mutex{}
		s.porClave[clave] = l
	}
	return l
}

func (s *Servicio) notificar(clave string, lineas []domcarrito.Linea) {
	s.mu.Lock()
	obs := append([]Observador(nil), s.observadores...)
	s.mu.Unlock()
	for _, o := range obs {
		o(clave, lineas)
	}
}

// cargar trae el carrito actual de la clave.
func (s *Servicio) cargar(clave string) (*domcarrito.Carrito, error) {
	lineas, err := s.almacen.Cargar(clave)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAlmacenNoDisponible, err)
	}
	return domcarrito.Desde(lineas), nil
}

// persistir guarda el estado completo y dispara la notificación.
func (s *Servicio) persistir(clave string, c *domcarrito.Carrito) error {
	lineas := c.Lineas()
	if err := s.almacen.Guardar(clave, lineas); err != nil {
		s.log.Error().Err(err).Str("carrito", clave).Msg("persistir carrito")
		return fmt.Errorf("%w: %v", domain.ErrAlmacenNoDisponible, err)
	}
	s.notificar(clave, lineas)
	return nil
}

// Contenido devuelve las líneas actuales del carrito.
func (s *Servicio) Contenido(clave string) ([]domcarrito.Linea, error) {
	c, err := s.cargar(clave)
	if err != nil {
		return nil, err
	}
	return c.Lineas(), nil
}

// AgregarOIncrementar agrega o suma cantidad y persiste.
func (s *Servicio) AgregarOIncrementar(clave string, id any, cantidad int, nombre string, precio decimal.Decimal, imagen, categoria string) ([]domcarrito.Linea, error) {
	l := s.lockDe(clave)
	l.Lock()
	defer l.Unlock()

	c, err := s.cargar(clave)
	if err != nil {
		return nil, err
	}
	if err := c.AgregarOIncrementar(id, cantidad, nombre, precio, imagen, categoria, s.stock); err != nil {
		return nil, err
	}
	if err := s.persistir(clave, c); err != nil {
		return nil, err
	}
	return c.Lineas(), nil
}

// Eliminar quita una línea (no-op si el id no está) y persiste.
func (s *Servicio) Eliminar(clave string, id any) ([]domcarrito.Linea, error) {
	l := s.lockDe(clave)
	l.Lock()
	defer l.Unlock()

	c, err := s.cargar(clave)
	if err != nil {
		return nil, err
	}
	c.Eliminar(id)
	if err := s.persistir(clave, c); err != nil {
		return nil, err
	}
	return c.Lineas(), nil
}

// AjustarCantidad aplica +1/-1; decrementar desde 1 elimina la línea.
func (s *Servicio) AjustarCantidad(clave string, id any, delta int) ([]domcarrito.Linea, error) {
	l := s.lockDe(clave)
	l.Lock()
	defer l.Unlock()

	c, err := s.cargar(clave)
	if err != nil {
		return nil, err
	}
	if err := c.AjustarCantidad(id, delta, s.stock); err != nil {
		return nil, err
	}
	if err := s.persistir(clave, c); err != nil {
		return nil, err
	}
	return c.Lineas(), nil
}

// Vaciar elimina el carrito y su entrada persistida.
func (s *Servicio) Vaciar(clave string) error {
	l := s.lockDe(clave)
	l.Lock()
	defer l.Unlock()

	if err := s.almacen.Eliminar(clave); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAlmacenNoDisponible, err)
	}
	s.notificar(clave, nil)
	return nil
}

// Total suma precio*cantidad de las líneas actuales.
func (s *Servicio) Total(clave string) (decimal.Decimal, error) {
	c, err := s.cargar(clave)
	if err != nil {
		return decimal.Zero, err
	}
	return c.Total(), nil
}

// CantidadTotal suma las cantidades (contador del ícono).
func (s *Servicio) CantidadTotal(clave string) (int, error) {
	c, err := s.cargar(clave)
	if err != nil {
		return 0, err
	}
	return c.CantidadTotal(), nil
}
