package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStockStatus(t *testing.T) {
	casos := []struct {
		nombre   string
		stock    int64
		umbral   int64
		esperado string
	}{
		{"stock cero es agotado", 0, 2, StockStatusAgotado},
		{"stock cero con umbral cero sigue agotado", 0, 0, StockStatusAgotado},
		{"stock igual al umbral es bajo", 2, 2, StockStatusBajo},
		{"stock bajo el umbral es bajo", 1, 3, StockStatusBajo},
		{"stock sobre el umbral es normal", 5, 2, StockStatusNormal},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			p := Product{Stock: c.stock, AlertThreshold: c.umbral}
			assert.Equal(t, c.esperado, p.StockStatus())
		})
	}
}

func TestInventoryValue(t *testing.T) {
	p := Product{Price: decimal.NewFromInt(240000), Stock: 2}
	assert.True(t, p.InventoryValue().Equal(decimal.NewFromInt(480000)))
}

func TestValidUsageType(t *testing.T) {
	assert.True(t, ValidUsageType(UsageTypeVenta))
	assert.True(t, ValidUsageType(UsageTypeSesion))
	assert.True(t, ValidUsageType(UsageTypeEmpresarial))
	assert.False(t, ValidUsageType("alquiler"))
	assert.False(t, ValidUsageType(""))
}
