package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Description    string          `json:"description"`
	Category       string          `json:"category" validate:"required"`
	Price          decimal.Decimal `json:"price"`
	Stock          int64           `json:"stock"`
	AlertThreshold int64           `json:"alert_threshold"`
	Images         []string        `json:"images"`
	UsageType      string          `json:"usage_type" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto (parcial; ID inmutable).
type UpdateProductRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string          `json:"description"`
	Category       *string          `json:"category"`
	Price          *decimal.Decimal `json:"price"`
	Stock          *int64           `json:"stock"`
	AlertThreshold *int64           `json:"alert_threshold"`
	Images         []string         `json:"images"`
	UsageType      *string          `json:"usage_type"`
}

// ProductResponse salida de un producto. StockStatus es derivado: agotado|bajo|normal.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Stock          int64           `json:"stock"`
	AlertThreshold int64           `json:"alert_threshold"`
	Images         []string        `json:"images"`
	UsageType      string          `json:"usage_type"`
	StockStatus    string          `json:"stock_status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos ordenada por nombre.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
