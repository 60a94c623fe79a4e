// Package memory implementa los puertos de persistencia sobre mapas en memoria
// protegidos por un único RWMutex. Es el almacén por defecto en desarrollo
// (DB_DRIVER=memory) y el backend de los tests de handlers.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estudio-stock/internal/domain/entity"
)

// Store es el estado compartido: catálogo, libro de órdenes y el contador
// consecutivo. Un solo mutex serializa todas las mutaciones, así que el
// chequeo-y-descuento de stock nunca corre en paralelo.
type Store struct {
	mu          sync.RWMutex
	products    map[string]*entity.Product
	orders      map[string]*entity.Order
	consecutive int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products: make(map[string]*entity.Product),
		orders:   make(map[string]*entity.Order),
	}
}

// SeedDemo inserta el producto de demostración si el catálogo está vacío.
func (s *Store) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.products) > 0 {
		return
	}
	now := time.Now()
	p := &entity.Product{
		ID:             uuid.New().String(),
		Name:           "Set de Maquillaje Profesional",
		Description:    "Set completo de maquillaje para profesionales",
		Category:       "Maquillaje",
		Price:          decimal.NewFromInt(240000),
		Stock:          2,
		AlertThreshold: 2,
		Images:         []string{},
		UsageType:      entity.UsageTypeVenta,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.products[p.ID] = p
}

// ── Snapshot para rollback ────────────────────────────────────────────────────

type snapshot struct {
	products    map[string]*entity.Product
	orders      map[string]*entity.Order
	consecutive int64
}

// El llamador debe tener el lock de escritura.
func (s *Store) snapshot() snapshot {
	products := make(map[string]*entity.Product, len(s.products))
	for id, p := range s.products {
		products[id] = cloneProduct(p)
	}
	orders := make(map[string]*entity.Order, len(s.orders))
	for id, o := range s.orders {
		orders[id] = cloneOrder(o)
	}
	return snapshot{products: products, orders: orders, consecutive: s.consecutive}
}

// El llamador debe tener el lock de escritura.
func (s *Store) restore(snap snapshot) {
	s.products = snap.products
	s.orders = snap.orders
	s.consecutive = snap.consecutive
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.Images = append([]string(nil), p.Images...)
	return &cp
}

func cloneOrder(o *entity.Order) *entity.Order {
	co := *o
	co.Items = append([]entity.OrderItem(nil), o.Items...)
	return &co
}
