package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-natural-api/internal/domain/entity"
)

func TestProducto_PrecioFormateado(t *testing.T) {
	p := &entity.Producto{Precio: decimal.NewFromFloat(12.5)}
	assert.Equal(t, "12,50", p.PrecioFormateado())

	p.Precio = decimal.NewFromInt(1500)
	assert.Equal(t, "1500,00", p.PrecioFormateado())
}

func TestProducto_EstaAgotado(t *testing.T) {
	assert.True(t, (&entity.Producto{Stock: 0}).EstaAgotado())
	assert.False(t, (&entity.Producto{Stock: 3}).EstaAgotado())
}

func TestUsuario_NombreCompleto(t *testing.T) {
	u := &entity.Usuario{PrimerNombre: "Ana", SegundoNombre: "María", ApellidoPaterno: "Quispe", ApellidoMaterno: "Mamani"}
	assert.Equal(t, "Ana María Quispe Mamani", u.NombreCompleto())

	u.SegundoNombre = ""
	assert.Equal(t, "Ana Quispe Mamani", u.NombreCompleto())
}
