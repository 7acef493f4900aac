package catalogo

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

// Parámetros de la búsqueda de sugerencias.
const (
	// MinimoConsulta caracteres mínimos antes de consultar el backend.
	MinimoConsulta = 2
	// LimiteSugerencias resultados máximos del desplegable.
	LimiteSugerencias = 6
)

// ErrConsultaCorta la consulta no alcanza el mínimo de caracteres.
var ErrConsultaCorta = errors.New("la consulta requiere al menos 2 caracteres")

// Buscador búsqueda de productos por fragmento de nombre con caché por
// consulta y descarte de respuestas obsoletas, ambos con alcance de sesión:
// cada clave de sesión lleva su propio número de generación, y una respuesta
// solo es válida si esa MISMA sesión no emitió una consulta más nueva mientras
// estaba en vuelo. Así el resultado de "ap" nunca pisa al de "app" aunque
// llegue después, y las búsquedas de clientes distintos no se invalidan entre
// sí.
type Buscador struct {
	repo repository.ProductoRepository

	mu       sync.Mutex
	sesiones map[string]*sesionBusqueda
}

// sesionBusqueda estado de búsqueda de un cliente.
type sesionBusqueda struct {
	generacion atomic.Uint64

	mu    sync.RWMutex
	cache map[string][]dto.ProductoResponse
}

// NewBuscador construye el buscador.
func NewBuscador(repo repository.ProductoRepository) *Buscador {
	return &Buscador{repo: repo, sesiones: map[string]*sesionBusqueda{}}
}

func (b *Buscador) sesionDe(clave string) *sesionBusqueda {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sesiones[clave]
	if !ok {
		s = &sesionBusqueda{cache: map[string][]dto.ProductoResponse{}}
		b.sesiones[clave] = s
	}
	return s
}

// Resultado de una búsqueda. Obsoleto indica que la misma sesión emitió una
// consulta más reciente mientras esta estaba en vuelo; el llamador no debe
// renderizarla.
type Resultado struct {
	Consulta string
	Items    []dto.ProductoResponse
	Obsoleto bool
}

// Buscar ejecuta la búsqueda del fragmento para la sesión dada.
func (b *Buscador) Buscar(sesion, fragmento string) (*Resultado, error) {
	consulta := strings.ToLower(strings.TrimSpace(fragmento))
	if len([]rune(consulta)) < MinimoConsulta {
		return nil, ErrConsultaCorta
	}

	ses := b.sesionDe(sesion)

	// Prioridad caché: resultados idénticos de la misma sesión no vuelven a la red.
	ses.mu.RLock()
	if items, ok := ses.cache[consulta]; ok {
		ses.mu.RUnlock()
		return &Resultado{Consulta: consulta, Items: items}, nil
	}
	ses.mu.RUnlock()

	gen := ses.generacion.Add(1)

	productos, err := b.repo.BuscarPorNombre(consulta, LimiteSugerencias)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, dto.NewProductoResponse(p))
	}

	ses.mu.Lock()
	ses.cache[consulta] = items
	ses.mu.Unlock()

	// Si la misma sesión emitió una consulta más nueva mientras esta estaba en
	// vuelo, el resultado se marca obsoleto y no debe renderizarse.
	obsoleto := ses.generacion.Load() != gen
	return &Resultado{Consulta: consulta, Items: items, Obsoleto: obsoleto}, nil
}
