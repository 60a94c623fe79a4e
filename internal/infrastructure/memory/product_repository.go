package memory

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/estudio-stock/internal/domain"
	"github.com/jhoicas/estudio-stock/internal/domain/entity"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Collator español para ordenar el catálogo como lo hacía el cliente web
// (localeCompare).
var nameCollator = collate.New(language.Spanish)

// ProductRepo implementación en memoria de ProductRepository.
// Con tx=true los métodos no toman el lock: el TxRunner ya lo tiene.
type ProductRepo struct {
	s  *Store
	tx bool
}

// NewProductRepository construye el repositorio sobre el almacén compartido.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// Create inserta el producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	if !r.tx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	r.s.products[product.ID] = cloneProduct(product)
	return nil
}

// GetByID devuelve una copia del producto, o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	if !r.tx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

// GetByIDForUpdate equivale a GetByID: el mutex del almacén ya serializa.
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

// List devuelve el catálogo ordenado por nombre (collation es).
func (r *ProductRepo) List() ([]*entity.Product, error) {
	if !r.tx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	list := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		list = append(list, cloneProduct(p))
	}
	sort.Slice(list, func(i, j int) bool {
		return nameCollator.CompareString(list[i].Name, list[j].Name) < 0
	})
	return list, nil
}

// Update reemplaza el producto completo; domain.ErrNotFound si no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	if !r.tx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[product.ID] = cloneProduct(product)
	return nil
}

// UpdateStock escribe el stock absoluto del producto.
func (r *ProductRepo) UpdateStock(productID string, stock int64) error {
	if !r.tx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

// Delete elimina el producto; domain.ErrNotFound si no existe.
func (r *ProductRepo) Delete(id string) error {
	if !r.tx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}
