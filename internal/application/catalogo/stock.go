package catalogo

import (
	"strconv"

	domcarrito "github.com/jhoicas/tienda-natural-api/internal/domain/carrito"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

var _ domcarrito.VerificadorStock = (*StockCatalogo)(nil)

// StockCatalogo verifica stock contra el catálogo para las mutaciones del
// carrito. Un id no numérico o inexistente reporta stock cero.
type StockCatalogo struct {
	repo repository.ProductoRepository
}

// NewStockCatalogo construye el verificador.
func NewStockCatalogo(repo repository.ProductoRepository) *StockCatalogo {
	return &StockCatalogo{repo: repo}
}

// StockDisponible implementa domcarrito.VerificadorStock.
func (s *StockCatalogo) StockDisponible(id string) (int, error) {
	idNum, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, nil
	}
	return s.repo.Stock(idNum)
}
