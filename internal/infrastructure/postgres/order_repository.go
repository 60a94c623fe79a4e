package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estudio-stock/internal/domain"
	"github.com/jhoicas/estudio-stock/internal/domain/entity"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx). Las líneas viven en order_items con ON DELETE CASCADE.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// NextConsecutive toma el siguiente valor de la secuencia. nextval nunca
// repite valores aunque la transacción haga rollback, así el consecutivo es
// único y creciente (con huecos posibles, aceptado).
func (r *OrderRepo) NextConsecutive() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('orders_consecutive_seq')`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next consecutive: %w", err)
	}
	return n, nil
}

// Create persiste la cabecera y sus líneas.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, consecutive, date, customer_name, total, status, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Consecutive, order.Date, order.CustomerName,
		order.Total, order.Status, order.Type,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, position, product_id, name, quantity, price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i, it := range order.Items {
		_, err := r.q.Exec(context.Background(), itemQuery,
			order.ID, i, it.ProductID, it.Name, it.Quantity, it.Price,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la orden con sus líneas. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.getOne(id, false)
}

// GetByIDForUpdate obtiene la orden bloqueando la cabecera (SELECT FOR UPDATE),
// para serializar completaciones concurrentes de la misma orden.
func (r *OrderRepo) GetByIDForUpdate(id string) (*entity.Order, error) {
	return r.getOne(id, true)
}

func (r *OrderRepo) getOne(id string, forUpdate bool) (*entity.Order, error) {
	query := `
		SELECT id, consecutive, date, customer_name, total, status, type
		FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Consecutive, &o.Date, &o.CustomerName, &o.Total, &o.Status, &o.Type,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	items, err := r.itemsByOrder([]string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// List devuelve las órdenes de la más reciente a la más antigua, con líneas.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	query := `
		SELECT id, consecutive, date, customer_name, total, status, type
		FROM orders ORDER BY date DESC, consecutive DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Consecutive, &o.Date, &o.CustomerName,
			&o.Total, &o.Status, &o.Type); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	items, err := r.itemsByOrder(ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Items = items[o.ID]
	}
	return list, nil
}

// itemsByOrder carga las líneas de un conjunto de órdenes en una sola consulta.
func (r *OrderRepo) itemsByOrder(orderIDs []string) (map[string][]entity.OrderItem, error) {
	query := `
		SELECT order_id, product_id, name, quantity, price
		FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, position`
	rows, err := r.q.Query(context.Background(), query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]entity.OrderItem, len(orderIDs))
	for rows.Next() {
		var orderID string
		var it entity.OrderItem
		if err := rows.Scan(&orderID, &it.ProductID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items[orderID] = append(items[orderID], it)
	}
	return items, rows.Err()
}

// UpdateStatus cambia el estado de la orden.
func (r *OrderRepo) UpdateStatus(orderID, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2 WHERE id = $1`, orderID, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la orden; las líneas caen por ON DELETE CASCADE.
func (r *OrderRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
