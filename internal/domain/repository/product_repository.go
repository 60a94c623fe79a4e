package repository

import "github.com/jhoicas/estudio-stock/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate obtiene el producto bloqueando la fila para la transacción
	// en curso (SELECT FOR UPDATE en PostgreSQL). Fuera de una transacción se
	// comporta como GetByID.
	GetByIDForUpdate(id string) (*entity.Product, error)
	// List devuelve el catálogo completo ordenado por nombre.
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock escribe el stock absoluto del producto. El flujo de órdenes
	// garantiza que el valor nunca sea negativo antes de llamar.
	UpdateStock(productID string, stock int64) error
	// Delete elimina el producto; domain.ErrNotFound si no existe. No hay
	// verificación referencial contra órdenes: las líneas históricas conservan
	// su copia de nombre y precio.
	Delete(id string) error
}
