// Package localstore persiste carritos en disco: un archivo JSON por clave,
// equivalente del almacenamiento clave-valor del navegador.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	appcarrito "github.com/jhoicas/tienda-natural-api/internal/application/carrito"
	domcarrito "github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
	"github.com/jhoicas/tienda-natural-api/pkg/logger"
)

var _ appcarrito.Almacen = (*AlmacenArchivo)(nil)

// AlmacenArchivo guarda cada carrito como un archivo JSON dentro de un
// directorio. La escritura es el archivo completo, nunca parcial.
type AlmacenArchivo struct {
	dir string
	log *logger.Logger
}

// NewAlmacenArchivo crea el directorio si no existe.
func NewAlmacenArchivo(dir string, log *logger.Logger) (*AlmacenArchivo, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de carritos: %w", err)
	}
	return &AlmacenArchivo{dir: dir, log: log}, nil
}

// Cargar lee las líneas guardadas bajo la clave. Entrada ausente o contenido
// corrupto cargan como carrito vacío; solo los fallos de lectura del propio
// sistema de archivos salen como error.
func (a *AlmacenArchivo) Cargar(clave string) ([]domcarrito.Linea, error) {
	data, err := os.ReadFile(a.ruta(clave))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domcarrito.Linea{}, nil
		}
		return nil, fmt.Errorf("leer carrito %s: %w", clave, err)
	}
	var lineas []domcarrito.Linea
	if err := json.Unmarshal(data, &lineas); err != nil {
		a.log.Warn().Str("clave", clave).Err(err).Msg("carrito corrupto, se descarta")
		return []domcarrito.Linea{}, nil
	}
	if lineas == nil {
		lineas = []domcarrito.Linea{}
	}
	return lineas, nil
}

// Guardar sobreescribe la entrada completa. Escribe a un archivo temporal y
// renombra para que una caída a mitad de escritura no deje JSON a medias.
func (a *AlmacenArchivo) Guardar(clave string, lineas []domcarrito.Linea) error {
	if lineas == nil {
		lineas = []domcarrito.Linea{}
	}
	data, err := json.Marshal(lineas)
	if err != nil {
		return fmt.Errorf("serializar carrito %s: %w", clave, err)
	}
	ruta := a.ruta(clave)
	tmp := ruta + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir carrito %s: %w", clave, err)
	}
	if err := os.Rename(tmp, ruta); err != nil {
		return fmt.Errorf("guardar carrito %s: %w", clave, err)
	}
	return nil
}

// Eliminar borra la entrada. Que no exista no es error.
func (a *AlmacenArchivo) Eliminar(clave string) error {
	if err := os.Remove(a.ruta(clave)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("eliminar carrito %s: %w", clave, err)
	}
	return nil
}

// ruta arma el path del archivo de la clave, saneando separadores para que
// una clave rara no escape del directorio.
func (a *AlmacenArchivo) ruta(clave string) string {
	limpia := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ':':
			return '_'
		}
		return r
	}, clave)
	return filepath.Join(a.dir, limpia+".json")
}
