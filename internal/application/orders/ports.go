package orders

import (
	"context"

	"github.com/jhoicas/estudio-stock/internal/domain/entity"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando
// repositorios atados a esa transacción. Garantiza atomicidad para la
// conciliación de stock: o se aplican todos los descuentos, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// ReceiptPDFGenerator genera la representación PDF de una orden (recibo A4).
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order) ([]byte, error)
}
