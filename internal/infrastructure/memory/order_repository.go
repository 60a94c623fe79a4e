package memory

import (
	"sort"

	"github.com/jhoicas/estudio-stock/internal/domain"
	"github.com/jhoicas/estudio-stock/internal/domain/entity"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación en memoria de OrderRepository.
// Con tx=true los métodos no toman el lock: el TxRunner ya lo tiene.
type OrderRepo struct {
	s  *Store
	tx bool
}

// NewOrderRepository construye el repositorio sobre el almacén compartido.
func NewOrderRepository(s *Store) *OrderRepo {
	return &OrderRepo{s: s}
}

// NextConsecutive incrementa y devuelve el contador del almacén.
// El rollback de la transacción también restaura el contador, así que la
// secuencia queda sin huecos en este almacén.
func (r *OrderRepo) NextConsecutive() (int64, error) {
	if !r.tx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	r.s.consecutive++
	return r.s.consecutive, nil
}

// Create inserta la orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	if !r.tx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	r.s.orders[order.ID] = cloneOrder(order)
	return nil
}

// GetByID devuelve una copia de la orden, o (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	if !r.tx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

// GetByIDForUpdate equivale a GetByID: el mutex del almacén ya serializa.
func (r *OrderRepo) GetByIDForUpdate(id string) (*entity.Order, error) {
	return r.GetByID(id)
}

// List devuelve las órdenes de la más reciente a la más antigua.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	if !r.tx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	list := make([]*entity.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		list = append(list, cloneOrder(o))
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date.Equal(list[j].Date) {
			return list[i].Consecutive > list[j].Consecutive
		}
		return list[i].Date.After(list[j].Date)
	})
	return list, nil
}

// UpdateStatus cambia el estado de la orden; domain.ErrNotFound si no existe.
func (r *OrderRepo) UpdateStatus(orderID, status string) error {
	if !r.tx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	o, ok := r.s.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

// Delete elimina la orden; domain.ErrNotFound si no existe.
func (r *OrderRepo) Delete(id string) error {
	if !r.tx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}
