package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Agrega en una sola llamada los KPIs que el panel de control renderiza:
// valor del inventario, totales de ventas/órdenes, alertas de stock,
// serie mensual del año y el mes en curso.
type DashboardSummaryDTO struct {
	// Inventario
	ProductCount    int64           `json:"product_count"`
	InventoryValue  decimal.Decimal `json:"inventory_value"` // suma de price * stock
	LowStockCount   int64           `json:"low_stock_count"`
	OutOfStockCount int64           `json:"out_of_stock_count"`

	// Libro de órdenes
	CompletedCount int64           `json:"completed_count"`
	CompletedTotal decimal.Decimal `json:"completed_total"`
	PendingCount   int64           `json:"pending_count"`
	PendingTotal   decimal.Decimal `json:"pending_total"`

	// Serie mensual del año en curso (12 puntos, ventas vs órdenes)
	MonthlyRevenue []MonthlyRevenueDTO `json:"monthly_revenue"`

	// Mes en curso
	Month MonthFinancialsDTO `json:"month"`

	// Top 5 productos por valor de inventario
	TopProducts []TopProductDTO `json:"top_products"`
}

// MonthlyRevenueDTO punto de la serie mensual. Label abreviado en español (ene, feb, ...).
type MonthlyRevenueDTO struct {
	Month   int             `json:"month"` // 1..12
	Label   string          `json:"label"`
	Ventas  decimal.Decimal `json:"ventas"`
	Ordenes decimal.Decimal `json:"ordenes"`
}

// MonthFinancialsDTO resumen del mes calendario en curso.
type MonthFinancialsDTO struct {
	Label      string          `json:"label"` // ej: "Agosto 2026"
	OrderCount int64           `json:"order_count"`
	Total      decimal.Decimal `json:"total"`
}

// TopProductDTO producto destacado del inventario para el widget del dashboard.
type TopProductDTO struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Stock          int64           `json:"stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}
