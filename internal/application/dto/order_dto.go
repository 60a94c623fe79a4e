package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de una orden nueva. El precio se toma del catálogo
// al crear la orden, no del request.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"min=1"`
}

// CreateOrderRequest entrada para crear una orden o venta.
// Type "sale" descuenta stock y completa en el mismo acto; "order" queda pendiente.
type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" validate:"required"`
	Type         string             `json:"type" validate:"required,oneof=order sale"`
	Items        []OrderItemRequest `json:"items" validate:"min=1"`
}

// OrderItemResponse línea de orden con la copia de nombre y precio al momento de creación.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID           string              `json:"id"`
	Consecutive  int64               `json:"consecutive"`
	Reference    string              `json:"reference"` // ej. "Orden #003"
	Date         time.Time           `json:"date"`
	CustomerName string              `json:"customer_name"`
	Items        []OrderItemResponse `json:"items"`
	Total        decimal.Decimal     `json:"total"`
	Status       string              `json:"status"`
	Type         string              `json:"type"`
}

// OrderListResponse órdenes de la más reciente a la más antigua.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}
