// Package analytics contiene el caso de uso del panel de control: agregados
// de inventario y del libro de órdenes, calculados por el AnalyticsRepository.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estudio-stock/internal/application/dto"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// DashboardUseCase genera el resumen del panel de control.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cinco consultas independientes lanzadas en paralelo:
//  1. GetInventoryTotals          → conteos y valor del inventario
//  2. GetOrderTotals              → totales completadas vs pendientes
//  3. GetMonthlyRevenue(año)      → serie mensual ventas vs órdenes
//  4. GetRangeTotals(mes actual)  → financieros del mes en curso
//  5. GetTopProducts(top 5)       → productos por valor de inventario
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	type inventoryResult struct {
		totals *repository.InventoryTotalsResult
		err    error
	}
	type orderResult struct {
		totals *repository.OrderTotalsResult
		err    error
	}
	type monthlyResult struct {
		points []repository.MonthlyRevenueResult
		err    error
	}
	type rangeResult struct {
		count int64
		total decimal.Decimal
		err   error
	}
	type topResult struct {
		products []repository.TopProductResult
		err      error
	}

	invCh := make(chan inventoryResult, 1)
	ordCh := make(chan orderResult, 1)
	monCh := make(chan monthlyResult, 1)
	rngCh := make(chan rangeResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		totals, err := uc.analyticsRepo.GetInventoryTotals(ctx)
		invCh <- inventoryResult{totals, err}
	}()
	go func() {
		totals, err := uc.analyticsRepo.GetOrderTotals(ctx)
		ordCh <- orderResult{totals, err}
	}()
	go func() {
		points, err := uc.analyticsRepo.GetMonthlyRevenue(ctx, now.Year())
		monCh <- monthlyResult{points, err}
	}()
	go func() {
		count, total, err := uc.analyticsRepo.GetRangeTotals(ctx, monthStart, monthEnd)
		rngCh <- rangeResult{count, total, err}
	}()
	go func() {
		products, err := uc.analyticsRepo.GetTopProducts(ctx, dashboardTopProducts)
		topCh <- topResult{products, err}
	}()

	inv := <-invCh
	ord := <-ordCh
	mon := <-monCh
	rng := <-rngCh
	top := <-topCh

	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: totales de inventario: %w", inv.err)
	}
	if ord.err != nil {
		return nil, fmt.Errorf("dashboard: totales de órdenes: %w", ord.err)
	}
	if mon.err != nil {
		return nil, fmt.Errorf("dashboard: serie mensual: %w", mon.err)
	}
	if rng.err != nil {
		return nil, fmt.Errorf("dashboard: mes en curso: %w", rng.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}

	topProducts := make([]dto.TopProductDTO, 0, len(top.products))
	for _, p := range top.products {
		topProducts = append(topProducts, dto.TopProductDTO{
			ProductID:      p.ProductID,
			Name:           p.Name,
			Price:          p.Price,
			Stock:          p.Stock,
			InventoryValue: p.InventoryValue.Round(2),
		})
	}

	return &dto.DashboardSummaryDTO{
		ProductCount:    inv.totals.ProductCount,
		InventoryValue:  inv.totals.InventoryValue.Round(2),
		LowStockCount:   inv.totals.LowStockCount,
		OutOfStockCount: inv.totals.OutOfStockCount,
		CompletedCount:  ord.totals.CompletedCount,
		CompletedTotal:  ord.totals.CompletedTotal.Round(2),
		PendingCount:    ord.totals.PendingCount,
		PendingTotal:    ord.totals.PendingTotal.Round(2),
		MonthlyRevenue:  fillMonthlySeries(mon.points),
		Month: dto.MonthFinancialsDTO{
			Label:      monthLabel(now),
			OrderCount: rng.count,
			Total:      rng.total.Round(2),
		},
		TopProducts: topProducts,
	}, nil
}

// monthShortLabels abreviaturas es-ES de los meses, como las del cliente web.
var monthShortLabels = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// fillMonthlySeries completa los 12 puntos del año: los meses sin órdenes
// quedan en cero.
func fillMonthlySeries(points []repository.MonthlyRevenueResult) []dto.MonthlyRevenueDTO {
	series := make([]dto.MonthlyRevenueDTO, 12)
	for i := range series {
		series[i] = dto.MonthlyRevenueDTO{
			Month:   i + 1,
			Label:   monthShortLabels[i],
			Ventas:  decimal.Zero,
			Ordenes: decimal.Zero,
		}
	}
	for _, p := range points {
		if p.Month < 1 || p.Month > 12 {
			continue
		}
		series[p.Month-1].Ventas = p.Ventas.Round(2)
		series[p.Month-1].Ordenes = p.Ordenes.Round(2)
	}
	return series
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
