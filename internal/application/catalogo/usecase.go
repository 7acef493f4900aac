// Package catalogo expone las lecturas del catálogo remoto: listado por
// categoría, detalle con join, relacionados y búsqueda con caché de sesión.
package catalogo

import (
	"github.com/jhoicas/tienda-natural-api/internal/application/dto"
	"github.com/jhoicas/tienda-natural-api/internal/domain"
	"github.com/jhoicas/tienda-natural-api/internal/domain/repository"
)

// Límite de productos relacionados en el carrusel del detalle.
const limiteRelacionados = 10

// UseCase lecturas del catálogo.
type UseCase struct {
	productoRepo  repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(productoRepo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository) *UseCase {
	return &UseCase{productoRepo: productoRepo, categoriaRepo: categoriaRepo}
}

// ListarPorCategoria resuelve la categoría por nombre (así navega ?categoria=)
// y devuelve sus productos visibles paginados.
func (uc *UseCase) ListarPorCategoria(nombreCategoria, orden string, page dto.PageRequest) (*dto.ProductoListResponse, error) {
	if nombreCategoria == "" {
		return nil, domain.ErrEntradaInvalida
	}
	page.DefaultPage()

	cat, err := uc.categoriaRepo.GetByNombre(nombreCategoria)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}

	switch orden {
	case repository.OrdenPorID, repository.OrdenPorNombre, repository.OrdenPorPrecioAsc, repository.OrdenPorPrecioDesc:
	default:
		orden = repository.OrdenPorID
	}

	productos, err := uc.productoRepo.ListByCategoria(cat.ID, orden, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductoListResponse{
		Categoria: cat.Nombre,
		Items:     make([]dto.ProductoResponse, 0, len(productos)),
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range productos {
		resp.Items = append(resp.Items, dto.NewProductoResponse(p))
	}
	return resp, nil
}

// Detalle trae un producto con el nombre de su categoría.
func (uc *UseCase) Detalle(id int64) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Visible {
		return nil, domain.ErrNotFound
	}
	r := dto.NewProductoResponse(p)
	return &r, nil
}

// Relacionados productos visibles de la misma categoría, excluyendo el actual.
func (uc *UseCase) Relacionados(id int64) ([]dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	relacionados, err := uc.productoRepo.Relacionados(p.IDCategoria, p.ID, limiteRelacionados)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(relacionados))
	for _, r := range relacionados {
		out = append(out, dto.NewProductoResponse(r))
	}
	return out, nil
}

// Categorias lista para los menús de navegación.
func (uc *UseCase) Categorias() ([]dto.CategoriaResponse, error) {
	cats, err := uc.categoriaRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre})
	}
	return out, nil
}
