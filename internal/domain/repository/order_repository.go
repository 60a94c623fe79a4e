package repository

import "github.com/jhoicas/estudio-stock/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
// GetByID devuelve (nil, nil) si la orden no existe.
type OrderRepository interface {
	// NextConsecutive entrega el siguiente número consecutivo, único y
	// estrictamente creciente durante la vida del almacén.
	NextConsecutive() (int64, error)
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// GetByIDForUpdate obtiene la orden bloqueando la fila (PostgreSQL) para
	// serializar completaciones concurrentes de la misma orden.
	GetByIDForUpdate(id string) (*entity.Order, error)
	// List devuelve las órdenes de la más reciente a la más antigua.
	List() ([]*entity.Order, error)
	UpdateStatus(orderID, status string) error
	// Delete elimina la orden; domain.ErrNotFound si no existe. Nunca revierte
	// descuentos de stock ya aplicados.
	Delete(id string) error
}
