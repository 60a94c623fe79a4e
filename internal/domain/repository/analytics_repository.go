package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryTotalsResult resultado crudo de los agregados del catálogo.
// Lo produce el almacén; el use case lo convierte en DTO.
type InventoryTotalsResult struct {
	ProductCount    int64
	InventoryValue  decimal.Decimal // suma de price * stock
	LowStockCount   int64           // stock <= alert_threshold
	OutOfStockCount int64           // stock == 0
}

// OrderTotalsResult agregados del libro de órdenes por estado.
type OrderTotalsResult struct {
	CompletedCount int64
	CompletedTotal decimal.Decimal
	PendingCount   int64
	PendingTotal   decimal.Decimal
}

// MonthlyRevenueResult ingreso de un mes calendario, separado por tipo de orden.
type MonthlyRevenueResult struct {
	Month   int // 1..12
	Ventas  decimal.Decimal
	Ordenes decimal.Decimal
}

// TopProductResult producto rankeado por valor de inventario (price * stock).
type TopProductResult struct {
	ProductID      string
	Name           string
	Price          decimal.Decimal
	Stock          int64
	InventoryValue decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	GetInventoryTotals(ctx context.Context) (*InventoryTotalsResult, error)
	GetOrderTotals(ctx context.Context) (*OrderTotalsResult, error)
	// GetMonthlyRevenue devuelve los ingresos por mes calendario del año dado.
	// Los meses sin órdenes no aparecen; el use case completa los 12 puntos.
	GetMonthlyRevenue(ctx context.Context, year int) ([]MonthlyRevenueResult, error)
	// GetRangeTotals devuelve cantidad y total de órdenes con fecha en [from, to).
	GetRangeTotals(ctx context.Context, from, to time.Time) (int64, decimal.Decimal, error)
	// GetTopProducts devuelve los productos con mayor valor de inventario, descendente.
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
}
