package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estudio-stock/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetInventoryTotals agrega conteos y valor del inventario en una sola consulta.
func (r *AnalyticsRepo) GetInventoryTotals(ctx context.Context) (*repository.InventoryTotalsResult, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(price * stock), 0),
		       COUNT(*) FILTER (WHERE stock <= alert_threshold),
		       COUNT(*) FILTER (WHERE stock = 0)
		FROM products`
	var res repository.InventoryTotalsResult
	err := r.q.QueryRow(ctx, query).Scan(
		&res.ProductCount, &res.InventoryValue, &res.LowStockCount, &res.OutOfStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory totals: %w", err)
	}
	return &res, nil
}

// GetOrderTotals agrega cantidades y totales por estado.
func (r *AnalyticsRepo) GetOrderTotals(ctx context.Context) (*repository.OrderTotalsResult, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'completed'),
		       COALESCE(SUM(total) FILTER (WHERE status = 'completed'), 0),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COALESCE(SUM(total) FILTER (WHERE status = 'pending'), 0)
		FROM orders`
	var res repository.OrderTotalsResult
	err := r.q.QueryRow(ctx, query).Scan(
		&res.CompletedCount, &res.CompletedTotal, &res.PendingCount, &res.PendingTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("order totals: %w", err)
	}
	return &res, nil
}

// GetMonthlyRevenue agrupa el ingreso por mes calendario del año dado,
// separando ventas (type=sale) de órdenes (type=order).
func (r *AnalyticsRepo) GetMonthlyRevenue(ctx context.Context, year int) ([]repository.MonthlyRevenueResult, error) {
	query := `
		SELECT EXTRACT(MONTH FROM date)::int AS month,
		       COALESCE(SUM(total) FILTER (WHERE type = 'sale'), 0),
		       COALESCE(SUM(total) FILTER (WHERE type = 'order'), 0)
		FROM orders
		WHERE EXTRACT(YEAR FROM date)::int = $1
		GROUP BY 1
		ORDER BY 1`
	rows, err := r.q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}
	defer rows.Close()

	var points []repository.MonthlyRevenueResult
	for rows.Next() {
		var p repository.MonthlyRevenueResult
		if err := rows.Scan(&p.Month, &p.Ventas, &p.Ordenes); err != nil {
			return nil, fmt.Errorf("scan monthly revenue: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// GetRangeTotals cuenta y suma las órdenes con fecha en [from, to).
func (r *AnalyticsRepo) GetRangeTotals(ctx context.Context, from, to time.Time) (int64, decimal.Decimal, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM orders WHERE date >= $1 AND date < $2`
	var count int64
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&count, &total); err != nil {
		return 0, decimal.Zero, fmt.Errorf("range totals: %w", err)
	}
	return count, total, nil
}

// GetTopProducts devuelve los productos con mayor valor de inventario (price * stock).
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT id, name, price, stock, price * stock AS inventory_value
		FROM products
		ORDER BY price * stock DESC, name
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var list []repository.TopProductResult
	for rows.Next() {
		var p repository.TopProductResult
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Price, &p.Stock, &p.InventoryValue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
