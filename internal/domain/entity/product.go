package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de uso permitidos para un producto.
const (
	UsageTypeVenta       = "venta"
	UsageTypeSesion      = "sesión 1-a-1"
	UsageTypeEmpresarial = "empresarial"
)

// Estados derivados de stock.
const (
	StockStatusNormal  = "normal"
	StockStatusBajo    = "bajo"
	StockStatusAgotado = "agotado"
)

// Product representa un producto del catálogo con su stock.
// Price se redondea a 2 decimales en cada escritura; Stock nunca queda negativo
// (lo garantiza el flujo de órdenes, no el tipo).
type Product struct {
	ID             string
	Name           string
	Description    string
	Category       string
	Price          decimal.Decimal
	Stock          int64
	AlertThreshold int64
	Images         []string
	UsageType      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidUsageType indica si el tipo de uso pertenece al conjunto cerrado.
func ValidUsageType(s string) bool {
	switch s {
	case UsageTypeVenta, UsageTypeSesion, UsageTypeEmpresarial:
		return true
	}
	return false
}

// StockStatus deriva el estado del stock frente al umbral de alerta:
// "agotado" con stock 0, "bajo" con stock <= umbral, "normal" en otro caso.
func (p *Product) StockStatus() string {
	if p.Stock == 0 {
		return StockStatusAgotado
	}
	if p.Stock <= p.AlertThreshold {
		return StockStatusBajo
	}
	return StockStatusNormal
}

// InventoryValue devuelve price * stock (valor del inventario de este producto).
func (p *Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Stock))
}
