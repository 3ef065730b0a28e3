package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/pkg/textnorm"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

var errNegativePrice = domain.NewError(domain.ErrInvalidInput, "precio no puede ser negativo")

// Create registra un producto con su existencia inicial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Precio.IsNegative() {
		return nil, errNegativePrice
	}
	p := &entity.Product{
		ID:         uuid.New().String(),
		Nombre:     in.Nombre,
		Existencia: in.Existencia,
		Precio:     in.Precio,
		Creado:     time.Now(),
	}
	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(p), nil
}

// GetByID devuelve un producto o NotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(p), nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductResponse, error) {
	list, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca por nombre sin distinguir tildes ni mayúsculas.
func (uc *ProductUseCase) Search(ctx context.Context, texto string) ([]*dto.ProductResponse, error) {
	folded := textnorm.Fold(texto)
	if folded == "" {
		return []*dto.ProductResponse{}, nil
	}
	list, err := uc.productRepo.Search(ctx, folded)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update aplica los campos presentes en la entrada.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Precio != nil && in.Precio.IsNegative() {
		return nil, errNegativePrice
	}
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Existencia != nil {
		p.Existencia = *in.Existencia
	}
	if in.Precio != nil {
		p.Precio = *in.Precio
	}
	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(p), nil
}

// Delete elimina el producto. Los pedidos que lo referencian conservan su foto de línea.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.MessageResponse, error) {
	if _, err := uc.find(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Producto eliminado"}, nil
}

func (uc *ProductUseCase) find(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func toProductResponses(list []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProductResponse(p))
	}
	return out
}
