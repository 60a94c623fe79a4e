package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estudio-stock/internal/application/dto"
	"github.com/jhoicas/estudio-stock/internal/domain"
	"github.com/jhoicas/estudio-stock/internal/domain/entity"
	"github.com/jhoicas/estudio-stock/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. El stock se descuenta
// únicamente desde el flujo de órdenes; aquí solo se fija su valor inicial
// o se ajusta manualmente vía Update.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y crea un producto. Ninguna violación deja mutación parcial:
// primero se validan todos los campos, luego se persiste.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)

	if name == "" {
		return nil, domain.NewValidationError("el nombre es requerido")
	}
	if category == "" {
		return nil, domain.NewValidationError("la categoría es requerida")
	}
	if in.Price.IsNegative() {
		return nil, domain.NewValidationError("el precio debe ser un número positivo")
	}
	if in.Stock < 0 {
		return nil, domain.NewValidationError("el stock debe ser un número positivo")
	}
	if in.AlertThreshold < 0 {
		return nil, domain.NewValidationError("el umbral de alerta debe ser un número positivo")
	}
	if !entity.ValidUsageType(in.UsageType) {
		return nil, domain.NewValidationError("tipo de uso inválido: %q", in.UsageType)
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           name,
		Description:    strings.TrimSpace(in.Description),
		Category:       category,
		Price:          in.Price.Round(2),
		Stock:          in.Stock,
		AlertThreshold: in.AlertThreshold,
		Images:         images,
		UsageType:      in.UsageType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial: los campos ausentes conservan su
// valor; los numéricos presentes se re-validan. El ID nunca cambia.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("el nombre no puede quedar vacío")
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			return nil, domain.NewValidationError("la categoría no puede quedar vacía")
		}
		product.Category = category
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.NewValidationError("el precio no puede ser negativo")
		}
		product.Price = in.Price.Round(2)
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.NewValidationError("el stock no puede ser negativo")
		}
		product.Stock = *in.Stock
	}
	if in.AlertThreshold != nil {
		if *in.AlertThreshold < 0 {
			return nil, domain.NewValidationError("el umbral de alerta no puede ser negativo")
		}
		product.AlertThreshold = *in.AlertThreshold
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.UsageType != nil {
		if !entity.ValidUsageType(*in.UsageType) {
			return nil, domain.NewValidationError("tipo de uso inválido: %q", *in.UsageType)
		}
		product.UsageType = *in.UsageType
	}

	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo ordenado por nombre.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Total: len(items)},
	}, nil
}

// Delete elimina un producto. Las órdenes históricas que lo referencian
// conservan su copia de nombre y precio, así que el borrado no las afecta.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Price:          p.Price,
		Stock:          p.Stock,
		AlertThreshold: p.AlertThreshold,
		Images:         p.Images,
		UsageType:      p.UsageType,
		StockStatus:    p.StockStatus(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
