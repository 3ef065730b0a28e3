package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes. Cada cliente pertenece al vendedor que lo creó;
// leer, modificar o eliminar un cliente ajeno devuelve PermissionDenied.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso de clientes.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

var errClientExists = domain.NewError(domain.ErrConflict, "El cliente ya existe")

// Create registra un cliente con vendedor = sellerID.
func (uc *ClientUseCase) Create(ctx context.Context, sellerID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrNoCredentials
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.clientRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errClientExists
	}
	c := &entity.Client{
		ID:       uuid.New().String(),
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Empresa:  in.Empresa,
		Email:    in.Email,
		Telefono: in.Telefono,
		Vendedor: sellerID,
		Creado:   time.Now(),
	}
	if err := uc.clientRepo.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, errClientExists
		}
		return nil, err
	}
	return dto.ToClientResponse(c), nil
}

// GetByID devuelve el cliente si pertenece al vendedor.
func (uc *ClientUseCase) GetByID(ctx context.Context, sellerID, id string) (*dto.ClientResponse, error) {
	c, err := uc.owned(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	return dto.ToClientResponse(c), nil
}

// List devuelve todos los clientes (vista de administración).
func (uc *ClientUseCase) List(ctx context.Context) ([]*dto.ClientResponse, error) {
	list, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// ListBySeller devuelve los clientes del vendedor autenticado.
func (uc *ClientUseCase) ListBySeller(ctx context.Context, sellerID string) ([]*dto.ClientResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrNoCredentials
	}
	list, err := uc.clientRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// Update aplica los campos presentes. El vendedor no cambia.
func (uc *ClientUseCase) Update(ctx context.Context, sellerID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		in.Email = &email
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	c, err := uc.owned(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		c.Apellido = *in.Apellido
	}
	if in.Empresa != nil {
		c.Empresa = *in.Empresa
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}
	if err := uc.clientRepo.Update(ctx, c); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, errClientExists
		}
		return nil, err
	}
	return dto.ToClientResponse(c), nil
}

// Delete elimina el cliente del vendedor.
func (uc *ClientUseCase) Delete(ctx context.Context, sellerID, id string) (*dto.MessageResponse, error) {
	if _, err := uc.owned(ctx, sellerID, id); err != nil {
		return nil, err
	}
	if err := uc.clientRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Cliente eliminado"}, nil
}

// owned: primero existencia, luego propiedad.
func (uc *ClientUseCase) owned(ctx context.Context, sellerID, id string) (*entity.Client, error) {
	c, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrClientNotFound
	}
	if !c.OwnedBy(sellerID) {
		return nil, domain.ErrNoCredentials
	}
	return c, nil
}

func toClientResponses(list []*entity.Client) []*dto.ClientResponse {
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToClientResponse(c))
	}
	return out
}
