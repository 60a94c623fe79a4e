package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estudio-stock/internal/domain/entity"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo calcula los agregados del dashboard con barridos sobre el
// almacén, bajo el lock de lectura.
type AnalyticsRepo struct {
	s *Store
}

// NewAnalyticsRepository construye el repositorio sobre el almacén compartido.
func NewAnalyticsRepository(s *Store) *AnalyticsRepo {
	return &AnalyticsRepo{s: s}
}

// GetInventoryTotals cuenta productos y suma price * stock.
func (r *AnalyticsRepo) GetInventoryTotals(ctx context.Context) (*repository.InventoryTotalsResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := &repository.InventoryTotalsResult{InventoryValue: decimal.Zero}
	for _, p := range r.s.products {
		res.ProductCount++
		res.InventoryValue = res.InventoryValue.Add(p.InventoryValue())
		if p.Stock <= p.AlertThreshold {
			res.LowStockCount++
		}
		if p.Stock == 0 {
			res.OutOfStockCount++
		}
	}
	return res, nil
}

// GetOrderTotals suma totales por estado.
func (r *AnalyticsRepo) GetOrderTotals(ctx context.Context) (*repository.OrderTotalsResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := &repository.OrderTotalsResult{
		CompletedTotal: decimal.Zero,
		PendingTotal:   decimal.Zero,
	}
	for _, o := range r.s.orders {
		switch o.Status {
		case entity.OrderStatusCompleted:
			res.CompletedCount++
			res.CompletedTotal = res.CompletedTotal.Add(o.Total)
		case entity.OrderStatusPending:
			res.PendingCount++
			res.PendingTotal = res.PendingTotal.Add(o.Total)
		}
	}
	return res, nil
}

// GetMonthlyRevenue agrupa el ingreso por mes calendario del año dado,
// separando ventas de órdenes.
func (r *AnalyticsRepo) GetMonthlyRevenue(ctx context.Context, year int) ([]repository.MonthlyRevenueResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	byMonth := make(map[int]*repository.MonthlyRevenueResult)
	for _, o := range r.s.orders {
		if o.Date.Year() != year {
			continue
		}
		m := int(o.Date.Month())
		point, ok := byMonth[m]
		if !ok {
			point = &repository.MonthlyRevenueResult{
				Month:   m,
				Ventas:  decimal.Zero,
				Ordenes: decimal.Zero,
			}
			byMonth[m] = point
		}
		if o.Type == entity.OrderTypeSale {
			point.Ventas = point.Ventas.Add(o.Total)
		} else {
			point.Ordenes = point.Ordenes.Add(o.Total)
		}
	}

	points := make([]repository.MonthlyRevenueResult, 0, len(byMonth))
	for _, p := range byMonth {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points, nil
}

// GetRangeTotals cuenta y suma las órdenes con fecha en [from, to).
func (r *AnalyticsRepo) GetRangeTotals(ctx context.Context, from, to time.Time) (int64, decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	total := decimal.Zero
	for _, o := range r.s.orders {
		if o.Date.Before(from) || !o.Date.Before(to) {
			continue
		}
		count++
		total = total.Add(o.Total)
	}
	return count, total, nil
}

// GetTopProducts devuelve los productos con mayor valor de inventario.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := make([]repository.TopProductResult, 0, len(r.s.products))
	for _, p := range r.s.products {
		all = append(all, repository.TopProductResult{
			ProductID:      p.ID,
			Name:           p.Name,
			Price:          p.Price,
			Stock:          p.Stock,
			InventoryValue: p.InventoryValue(),
		})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].InventoryValue.GreaterThan(all[j].InventoryValue)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
