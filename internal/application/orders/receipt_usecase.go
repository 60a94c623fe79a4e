package orders

import (
	"context"
	"fmt"

	"github.com/jhoicas/estudio-stock/internal/domain"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de una orden existente.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orderRepo repository.OrderRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, generator: generator}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido
// (ej. "orden-003.pdf").
func (uc *ReceiptUseCase) Generate(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", domain.ErrOrderNotFound
	}
	pdf, err := uc.generator.GenerateReceiptPDF(ctx, order)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("orden-%03d.pdf", order.Consecutive), nil
}
