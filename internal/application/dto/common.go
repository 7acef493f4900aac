package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PageRequest paginación para listados. Las páginas de la tienda navegan con
// ?page= (base 1); limit/offset quedan disponibles para clientes directos.
type PageRequest struct {
	Page   int `query:"page" validate:"min=0"`
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto y traduce Page a Offset.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Page > 0 {
		p.Offset = (p.Page - 1) * p.Limit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDProducto acepta el id como string o como número JSON y lo normaliza a
// string. Las páginas del frontend envían ambas formas según el origen del
// dato (data-attribute vs. objeto producto).
type IDProducto string

// UnmarshalJSON implementa la normalización en el borde de deserialización.
func (id *IDProducto) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*id = IDProducto(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	// Los ids son enteros; descartar una posible parte decimal de float.
	if f, err := n.Float64(); err == nil && n.String() != "" {
		if i, err2 := n.Int64(); err2 == nil {
			*id = IDProducto(strconv.FormatInt(i, 10))
		} else {
			*id = IDProducto(strconv.FormatInt(int64(f), 10))
		}
		return nil
	}
	*id = IDProducto(n.String())
	return nil
}

// String devuelve la forma canónica.
func (id IDProducto) String() string { return string(id) }

// Int64 convierte el id a entero; false si no es numérico.
func (id IDProducto) Int64() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
