package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden. La transición es de una sola vía: pending -> completed.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// Tipos de orden. Una venta (sale) descuenta stock al crearse; una orden (order)
// lo descuenta al completarse.
const (
	OrderTypeOrder = "order"
	OrderTypeSale  = "sale"
)

// OrderItem es una línea de la orden. ProductID es la llave real de cruce con el
// catálogo; Name y Price son una copia tomada al momento de crear la orden, de modo
// que cambios posteriores de precio o nombre en el catálogo no alteran la historia.
type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int64
	Price     decimal.Decimal
}

// Subtotal devuelve price * quantity de la línea.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// Order representa una orden o venta del negocio.
// Consecutive es el número humano ("Orden #003"), único y estrictamente creciente.
// Total siempre es la suma de los subtotales de Items.
type Order struct {
	ID           string
	Consecutive  int64
	Date         time.Time
	CustomerName string
	Items        []OrderItem
	Total        decimal.Decimal
	Status       string
	Type         string
}

// ComputeTotal suma price * quantity de todas las líneas, redondeado a 2 decimales.
func ComputeTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total.Round(2)
}

// Reference devuelve el número legible de la orden, ej. "Orden #003".
func (o *Order) Reference() string {
	return fmt.Sprintf("Orden #%03d", o.Consecutive)
}

// Completed indica si la orden ya está en estado terminal.
func (o *Order) Completed() bool {
	return o.Status == OrderStatusCompleted
}
