package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estudio-stock/internal/domain/entity"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
)

func seedSet(t *testing.T, s *Store) string {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:        "set-1",
		Name:      "Set de Maquillaje Profesional",
		Category:  "Maquillaje",
		Price:     decimal.NewFromInt(240000),
		Stock:     5,
		Images:    []string{},
		UsageType: entity.UsageTypeVenta,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, NewProductRepository(s).Create(p))
	return p.ID
}

func TestTxRunner_RollbackRestauraTodo(t *testing.T) {
	s := NewStore()
	id := seedSet(t, s)
	runner := NewTxRunner(s)

	falla := errors.New("falla simulada")
	err := runner.Run(context.Background(), func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		// Mutaciones que deben deshacerse
		require.NoError(t, productRepo.UpdateStock(id, 0))
		_, err := orderRepo.NextConsecutive()
		require.NoError(t, err)
		require.NoError(t, orderRepo.Create(&entity.Order{ID: "o1", Consecutive: 1}))
		return falla
	})
	require.ErrorIs(t, err, falla)

	// El stock, el contador y el libro de órdenes vuelven al estado previo
	p, err := NewProductRepository(s).GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Stock)

	o, err := NewOrderRepository(s).GetByID("o1")
	require.NoError(t, err)
	assert.Nil(t, o)

	// El siguiente consecutivo arranca de nuevo en 1 (sin huecos)
	n, err := NewOrderRepository(s).NextConsecutive()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestTxRunner_CommitPersiste(t *testing.T) {
	s := NewStore()
	id := seedSet(t, s)
	runner := NewTxRunner(s)

	err := runner.Run(context.Background(), func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		return productRepo.UpdateStock(id, 3)
	})
	require.NoError(t, err)

	p, err := NewProductRepository(s).GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Stock)
}

func TestTxRunner_ContextoCancelado(t *testing.T) {
	s := NewStore()
	runner := NewTxRunner(s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	llamado := false
	err := runner.Run(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		llamado = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, llamado, "el callback no debe ejecutarse con el contexto cancelado")
}

func TestStore_SeedDemoEsIdempotente(t *testing.T) {
	s := NewStore()
	s.SeedDemo()
	s.SeedDemo()

	list, err := NewProductRepository(s).List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Set de Maquillaje Profesional", list[0].Name)
	assert.Equal(t, entity.StockStatusBajo, list[0].StockStatus())
}

func TestProductRepo_DevuelveCopias(t *testing.T) {
	s := NewStore()
	id := seedSet(t, s)
	repo := NewProductRepository(s)

	p, err := repo.GetByID(id)
	require.NoError(t, err)

	// Mutar la copia no afecta el almacén
	p.Stock = 999
	otra, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(5), otra.Stock)
}
