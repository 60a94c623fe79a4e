package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estudio-stock/internal/domain/entity"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
	"github.com/jhoicas/estudio-stock/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, repo repository.ProductRepository, name string, price, stock, umbral int64) {
	t.Helper()
	now := time.Now()
	require.NoError(t, repo.Create(&entity.Product{
		ID:             name,
		Name:           name,
		Category:       "Maquillaje",
		Price:          decimal.NewFromInt(price),
		Stock:          stock,
		AlertThreshold: umbral,
		Images:         []string{},
		UsageType:      entity.UsageTypeVenta,
		CreatedAt:      now,
		UpdatedAt:      now,
	}))
}

func seedOrder(t *testing.T, repo repository.OrderRepository, id string, total int64, status, tipo string, date time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.Order{
		ID:           id,
		Consecutive:  1,
		Date:         date,
		CustomerName: "Laura",
		Total:        decimal.NewFromInt(total),
		Status:       status,
		Type:         tipo,
	}))
}

func TestGetSummary(t *testing.T) {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	orders := memory.NewOrderRepository(store)

	// Inventario: 3 productos, uno agotado y uno bajo el umbral
	seedProduct(t, products, "Set de Maquillaje", 240000, 2, 1) // normal, valor 480000
	seedProduct(t, products, "Brocha Kabuki", 45000, 1, 2)      // bajo, valor 45000
	seedProduct(t, products, "Paleta de Sombras", 90000, 0, 2)  // agotado, valor 0

	// Libro: una venta completada este mes, una orden pendiente
	now := time.Now()
	seedOrder(t, orders, "o1", 240000, entity.OrderStatusCompleted, entity.OrderTypeSale, now)
	seedOrder(t, orders, "o2", 45000, entity.OrderStatusPending, entity.OrderTypeOrder, now)

	uc := NewDashboardUseCase(memory.NewAnalyticsRepository(store))
	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.ProductCount)
	assert.True(t, summary.InventoryValue.Equal(decimal.NewFromInt(525000)),
		"valor de inventario esperado 525000, obtenido %s", summary.InventoryValue)
	// El agotado también cuenta como bajo umbral
	assert.Equal(t, int64(2), summary.LowStockCount)
	assert.Equal(t, int64(1), summary.OutOfStockCount)

	assert.Equal(t, int64(1), summary.CompletedCount)
	assert.True(t, summary.CompletedTotal.Equal(decimal.NewFromInt(240000)))
	assert.Equal(t, int64(1), summary.PendingCount)
	assert.True(t, summary.PendingTotal.Equal(decimal.NewFromInt(45000)))

	// Mes en curso: ambas órdenes caen dentro del rango
	assert.Equal(t, int64(2), summary.Month.OrderCount)
	assert.True(t, summary.Month.Total.Equal(decimal.NewFromInt(285000)))

	// Serie mensual: 12 puntos siempre, con la venta en el mes actual
	require.Len(t, summary.MonthlyRevenue, 12)
	punto := summary.MonthlyRevenue[int(now.Month())-1]
	assert.True(t, punto.Ventas.Equal(decimal.NewFromInt(240000)))
	assert.True(t, punto.Ordenes.Equal(decimal.NewFromInt(45000)))

	// Top productos por valor de inventario
	require.NotEmpty(t, summary.TopProducts)
	assert.Equal(t, "Set de Maquillaje", summary.TopProducts[0].Name)
	assert.True(t, summary.TopProducts[0].InventoryValue.Equal(decimal.NewFromInt(480000)))
}

func TestGetSummary_AlmacenVacio(t *testing.T) {
	store := memory.NewStore()
	uc := NewDashboardUseCase(memory.NewAnalyticsRepository(store))

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.ProductCount)
	assert.True(t, summary.InventoryValue.IsZero())
	assert.Empty(t, summary.TopProducts)

	// La serie siempre trae los 12 meses, en cero
	require.Len(t, summary.MonthlyRevenue, 12)
	for _, p := range summary.MonthlyRevenue {
		assert.True(t, p.Ventas.IsZero())
		assert.True(t, p.Ordenes.IsZero())
	}
}

func TestFillMonthlySeries(t *testing.T) {
	points := []repository.MonthlyRevenueResult{
		{Month: 3, Ventas: decimal.NewFromInt(100), Ordenes: decimal.NewFromInt(50)},
		{Month: 13, Ventas: decimal.NewFromInt(999)}, // fuera de rango: se ignora
	}

	series := fillMonthlySeries(points)
	require.Len(t, series, 12)

	assert.Equal(t, "ene", series[0].Label)
	assert.Equal(t, "dic", series[11].Label)
	assert.True(t, series[2].Ventas.Equal(decimal.NewFromInt(100)))
	assert.True(t, series[2].Ordenes.Equal(decimal.NewFromInt(50)))
	assert.True(t, series[0].Ventas.IsZero())
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Agosto 2026", monthLabel(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Enero 2027", monthLabel(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
}
