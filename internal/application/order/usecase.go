package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos. Es el único servicio con efectos sobre otra
// entidad: reserva, ajusta y devuelve existencia de productos.
// Cada mutación corre en una sola transacción (todo o nada).
type OrderUseCase struct {
	txRunner   TxRunner
	orderRepo  repository.OrderRepository
	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
	renderer   ReceiptRenderer
}

// NewOrderUseCase construye el caso de uso. renderer puede ser nil si no se sirven comprobantes.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
	renderer ReceiptRenderer,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:   txRunner,
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		userRepo:   userRepo,
		renderer:   renderer,
	}
}

// Create valida cliente y propiedad, descuenta existencia por cada línea y guarda el pedido
// con vendedor = sellerID.
func (uc *OrderUseCase) Create(ctx context.Context, sellerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrNoCredentials
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Total.IsNegative() {
		return nil, errNegativeTotal
	}
	client, err := uc.clientRepo.GetByID(ctx, in.Cliente)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if !client.OwnedBy(sellerID) {
		return nil, domain.ErrNoCredentials
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.OrderStatusPendiente
	}
	order := &entity.Order{
		ID:       uuid.New().String(),
		Total:    in.Total,
		Cliente:  client.ID,
		Vendedor: sellerID,
		Estado:   estado,
		Creado:   time.Now(),
	}
	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		items, err := reserve(ctx, productRepo, toItems(in.Pedido))
		if err != nil {
			return err
		}
		order.Items = items
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(order), nil
}

// Update aplica los campos presentes. Si trae líneas nuevas, reconcilia la existencia
// devolviendo primero la reserva previa de cada producto.
func (uc *OrderUseCase) Update(ctx context.Context, sellerID, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Total != nil && in.Total.IsNegative() {
		return nil, errNegativeTotal
	}
	current, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrOrderNotFound
	}
	// sin cliente en la entrada se conserva el actual, aunque ya no exista
	var client *entity.Client
	if in.Cliente != nil {
		client, err = uc.clientRepo.GetByID(ctx, *in.Cliente)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrClientNotFound
		}
	}
	if !current.OwnedBy(sellerID) {
		return nil, domain.ErrNoCredentials
	}
	// un pedido no puede pasar a un cliente de otro vendedor
	clientID := current.Cliente
	if client != nil {
		if !client.OwnedBy(sellerID) {
			return nil, domain.ErrNoCredentials
		}
		clientID = client.ID
	}

	var updated *entity.Order
	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		// la fila del pedido queda bloqueada: otra actualización espera y relee las líneas vigentes
		locked, err := orderRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrOrderNotFound
		}
		if len(in.Pedido) > 0 {
			items, err := reconcile(ctx, productRepo, locked.Items, toItems(in.Pedido))
			if err != nil {
				return err
			}
			locked.Items = items
		}
		if in.Total != nil {
			locked.Total = *in.Total
		}
		if in.Estado != nil {
			locked.Estado = *in.Estado
		}
		locked.Cliente = clientID
		updated = locked
		return orderRepo.Update(ctx, locked)
	})
	if err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(updated), nil
}

// Delete devuelve a cada producto la cantidad de sus líneas y elimina el pedido.
func (uc *OrderUseCase) Delete(ctx context.Context, sellerID, id string) (*dto.MessageResponse, error) {
	if _, err := uc.owned(ctx, sellerID, id); err != nil {
		return nil, err
	}
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		locked, err := orderRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrOrderNotFound
		}
		if err := release(ctx, productRepo, locked.Items); err != nil {
			return err
		}
		return orderRepo.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Pedido eliminado"}, nil
}

// GetByID devuelve un pedido del vendedor.
func (uc *OrderUseCase) GetByID(ctx context.Context, sellerID, id string) (*dto.OrderResponse, error) {
	o, err := uc.owned(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(o), nil
}

// List devuelve todos los pedidos (vista de administración, sin filtro de vendedor).
func (uc *OrderUseCase) List(ctx context.Context) ([]*dto.OrderResponse, error) {
	list, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListBySeller devuelve los pedidos del vendedor con los datos del cliente adjuntos.
func (uc *OrderUseCase) ListBySeller(ctx context.Context, sellerID string) ([]*dto.OrderResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrNoCredentials
	}
	rows, err := uc.orderRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(rows))
	for _, r := range rows {
		o := dto.ToOrderResponse(r.Order)
		o.Cliente = dto.ToClientResponse(r.Client)
		out = append(out, o)
	}
	return out, nil
}

// ListByStatus devuelve los pedidos del vendedor en el estado dado.
func (uc *OrderUseCase) ListByStatus(ctx context.Context, sellerID, estado string) ([]*dto.OrderResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrNoCredentials
	}
	if !entity.ValidOrderStatus(estado) {
		return nil, domain.NewError(domain.ErrInvalidInput, "estado debe ser uno de: PENDIENTE COMPLETADO CANCELADO")
	}
	list, err := uc.orderRepo.ListBySellerAndStatus(ctx, sellerID, estado)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ClientOf devuelve el cliente de un pedido (para resolver el campo cliente en GraphQL).
func (uc *OrderUseCase) ClientOf(ctx context.Context, clientID string) (*dto.ClientResponse, error) {
	c, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return dto.ToClientResponse(c), nil
}

// Receipt genera el PDF del comprobante de un pedido del vendedor.
func (uc *OrderUseCase) Receipt(ctx context.Context, sellerID, id string) ([]byte, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("order receipt: renderer no configurado")
	}
	o, err := uc.owned(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(ctx, o.Cliente)
	if err != nil {
		return nil, err
	}
	seller, err := uc.userRepo.GetByID(ctx, o.Vendedor)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderOrderReceipt(ctx, Receipt{Order: o, Client: client, Seller: seller})
}

// owned carga el pedido y verifica que pertenezca al vendedor. Existencia antes que propiedad.
func (uc *OrderUseCase) owned(ctx context.Context, sellerID, id string) (*entity.Order, error) {
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	if !o.OwnedBy(sellerID) {
		return nil, domain.ErrNoCredentials
	}
	return o, nil
}

var errNegativeTotal = domain.NewError(domain.ErrInvalidInput, "total no puede ser negativo")

func toItems(in []dto.OrderItemRequest) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		items = append(items, entity.OrderItem{ProductID: it.ProductID, Cantidad: it.Cantidad})
	}
	return items
}

func toOrderResponses(list []*entity.Order) []*dto.OrderResponse {
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.ToOrderResponse(o))
	}
	return out
}
