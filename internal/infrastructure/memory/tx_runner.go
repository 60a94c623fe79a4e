package memory

import (
	"context"

	"github.com/jhoicas/estudio-stock/internal/application/orders"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
)

var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner simula una transacción sobre el almacén en memoria: toma el lock
// de escritura durante todo el callback y, si fn falla, restaura el snapshot
// previo. Así la conciliación de stock es todo-o-nada también en memoria.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el almacén compartido.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repos que no toman locks propios (el lock ya está tomado).
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.snapshot()
	productRepo := &ProductRepo{s: r.s, tx: true}
	orderRepo := &OrderRepo{s: r.s, tx: true}

	if err := fn(productRepo, orderRepo); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
