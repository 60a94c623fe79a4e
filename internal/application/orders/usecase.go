package orders

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estudio-stock/internal/application/dto"
	"github.com/jhoicas/estudio-stock/internal/domain"
	"github.com/jhoicas/estudio-stock/internal/domain/entity"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
)

// UseCase orquesta el ciclo de vida de órdenes y ventas.
//
// Una venta (type=sale) descuenta stock y nace completada, todo dentro de la
// misma transacción de creación. Una orden (type=order) nace pendiente y el
// descuento ocurre al completarla. La conciliación de stock es todo-o-nada:
// se validan todas las líneas antes de aplicar el primer descuento.
type UseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, orderRepo repository.OrderRepository) *UseCase {
	return &UseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// Create valida el request, resuelve cada producto por ID, toma la copia de
// nombre/precio, calcula el total y persiste la orden. Para ventas, concilia
// el stock en la misma transacción y la orden queda completada.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	customer := strings.TrimSpace(in.CustomerName)
	if customer == "" {
		return nil, domain.NewValidationError("el nombre del cliente es requerido")
	}
	if in.Type != entity.OrderTypeOrder && in.Type != entity.OrderTypeSale {
		return nil, domain.NewValidationError("tipo de orden inválido: %q", in.Type)
	}
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("la orden debe tener al menos un producto")
	}
	for _, it := range in.Items {
		if it.ProductID == "" {
			return nil, domain.NewValidationError("cada línea requiere product_id")
		}
		if it.Quantity < 1 {
			return nil, domain.NewValidationError("la cantidad debe ser al menos 1")
		}
	}

	var created *entity.Order
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		// Resolver y bloquear los productos en orden de ID para evitar
		// interbloqueos entre creaciones concurrentes.
		locked, err := lockProducts(productRepo, in.Items)
		if err != nil {
			return err
		}

		items := make([]entity.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			p := locked[it.ProductID]
			items = append(items, entity.OrderItem{
				ProductID: p.ID,
				Name:      p.Name,
				Quantity:  it.Quantity,
				Price:     p.Price,
			})
		}

		consecutive, err := orderRepo.NextConsecutive()
		if err != nil {
			return err
		}

		order := &entity.Order{
			ID:           uuid.New().String(),
			Consecutive:  consecutive,
			Date:         time.Now(),
			CustomerName: customer,
			Items:        items,
			Total:        entity.ComputeTotal(items),
			Status:       entity.OrderStatusPending,
			Type:         in.Type,
		}

		// Venta: concilia stock y completa en el mismo acto.
		if in.Type == entity.OrderTypeSale {
			if err := reconcileStock(productRepo, locked, items); err != nil {
				return err
			}
			order.Status = entity.OrderStatusCompleted
		}

		if err := orderRepo.Create(order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

// Complete pasa una orden pendiente a completada, conciliando el stock contra
// las líneas capturadas al crearla. Completar una orden ya completada devuelve
// domain.ErrConflict y no toca el stock.
func (uc *UseCase) Complete(ctx context.Context, id string) (*dto.OrderResponse, error) {
	var completed *entity.Order
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		order, err := orderRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}
		if order.Completed() {
			return domain.ErrConflict
		}

		locked, err := lockProducts(productRepo, itemRequests(order.Items))
		if err != nil {
			return err
		}
		if err := reconcileStock(productRepo, locked, order.Items); err != nil {
			return err
		}
		if err := orderRepo.UpdateStatus(order.ID, entity.OrderStatusCompleted); err != nil {
			return err
		}
		order.Status = entity.OrderStatusCompleted
		completed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(completed), nil
}

// GetByID obtiene una orden por ID. Devuelve (nil, nil) si no existe.
func (uc *UseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List devuelve las órdenes de la más reciente a la más antigua.
func (uc *UseCase) List() (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items}, nil
}

// Delete elimina una orden en cualquier estado. Los descuentos de stock ya
// aplicados no se revierten (no hay transacción compensatoria).
func (uc *UseCase) Delete(id string) error {
	return uc.orderRepo.Delete(id)
}

// ── Conciliación de stock ─────────────────────────────────────────────────────

// lockProducts resuelve cada producto referenciado y lo bloquea para la
// transacción en curso, en orden determinista de ID. Falla con
// ProductReferenceError si alguna línea apunta a un producto inexistente.
func lockProducts(
	productRepo repository.ProductRepository,
	items []dto.OrderItemRequest,
) (map[string]*entity.Product, error) {
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}
	sort.Strings(ids)

	locked := make(map[string]*entity.Product, len(ids))
	for _, id := range ids {
		p, err := productRepo.GetByIDForUpdate(id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, &domain.ProductReferenceError{ProductID: id}
		}
		locked[id] = p
	}
	return locked, nil
}

// reconcileStock valida que el stock alcance para todas las líneas y solo
// entonces aplica los descuentos. Cantidades del mismo producto en varias
// líneas se agregan antes de validar. Con las filas ya bloqueadas, cualquier
// error posterior se revierte con la transacción (todo-o-nada).
func reconcileStock(
	productRepo repository.ProductRepository,
	locked map[string]*entity.Product,
	items []entity.OrderItem,
) error {
	needed := make(map[string]int64, len(items))
	for _, it := range items {
		needed[it.ProductID] += it.Quantity
	}

	// Primera pasada: validar todo antes de tocar nada.
	for id, qty := range needed {
		p := locked[id]
		if p.Stock < qty {
			return &domain.InsufficientStockError{
				ProductName: p.Name,
				Available:   p.Stock,
				Requested:   qty,
			}
		}
	}

	// Segunda pasada: aplicar los descuentos.
	for id, qty := range needed {
		p := locked[id]
		if err := productRepo.UpdateStock(id, p.Stock-qty); err != nil {
			return err
		}
	}
	return nil
}

// itemRequests proyecta líneas ya capturadas al formato que usa lockProducts.
func itemRequests(items []entity.OrderItem) []dto.OrderItemRequest {
	out := make([]dto.OrderItemRequest, 0, len(items))
	for _, it := range items {
		out = append(out, dto.OrderItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		Consecutive:  o.Consecutive,
		Reference:    o.Reference(),
		Date:         o.Date,
		CustomerName: o.CustomerName,
		Items:        items,
		Total:        o.Total,
		Status:       o.Status,
		Type:         o.Type,
	}
}
