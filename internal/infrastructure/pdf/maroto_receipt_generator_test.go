package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estudio-stock/internal/domain/entity"
)

func TestGenerateReceiptPDF(t *testing.T) {
	gen := NewMarotoReceiptGenerator("Estudio de Belleza")

	order := &entity.Order{
		ID:           "abc",
		Consecutive:  3,
		Date:         time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
		CustomerName: "Laura Gómez",
		Items: []entity.OrderItem{
			{ProductID: "p1", Name: "Set de Maquillaje Profesional", Quantity: 2, Price: decimal.NewFromInt(240000)},
			{ProductID: "p2", Name: "Brocha Kabuki", Quantity: 1, Price: decimal.NewFromInt(45000)},
		},
		Total:  decimal.NewFromInt(525000),
		Status: entity.OrderStatusCompleted,
		Type:   entity.OrderTypeSale,
	}

	pdf, err := gen.GenerateReceiptPDF(context.Background(), order)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)

	// Un PDF válido empieza con la firma %PDF
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "los bytes no parecen un PDF")
}

func TestGenerateReceiptPDF_SinLineas(t *testing.T) {
	gen := NewMarotoReceiptGenerator("Estudio de Belleza")

	// Una orden sin líneas no debería ocurrir, pero el generador no revienta
	order := &entity.Order{
		ID:           "vacia",
		Consecutive:  1,
		Date:         time.Now(),
		CustomerName: "Laura",
		Total:        decimal.Zero,
		Status:       entity.OrderStatusPending,
		Type:         entity.OrderTypeOrder,
	}

	pdf, err := gen.GenerateReceiptPDF(context.Background(), order)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
