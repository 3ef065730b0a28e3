package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/pedidos-api/internal/application/auth"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/order"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// Resolver conecta los campos del esquema con los casos de uso.
// La sesión del vendedor llega en p.Context (ver auth.WithSession).
type Resolver struct {
	auth      *auth.AuthUseCase
	products  *usecase.ProductUseCase
	clients   *usecase.ClientUseCase
	orders    *order.OrderUseCase
	analytics *usecase.AnalyticsUseCase
	log       *logger.Logger
}

// NewResolver construye el resolver.
func NewResolver(
	authUC *auth.AuthUseCase,
	products *usecase.ProductUseCase,
	clients *usecase.ClientUseCase,
	orders *order.OrderUseCase,
	analytics *usecase.AnalyticsUseCase,
	log *logger.Logger,
) *Resolver {
	return &Resolver{auth: authUC, products: products, clients: clients, orders: orders, analytics: analytics, log: log}
}

func argString(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func seller(p graphql.ResolveParams) string {
	return auth.SellerID(p.Context)
}

// ── Usuarios ────────────────────────────────────────────────────────────────

func (r *Resolver) obtenerUsuario(p graphql.ResolveParams) (interface{}, error) {
	if u := r.auth.CurrentUser(p.Context); u != nil {
		return u, nil
	}
	return nil, nil
}

func (r *Resolver) nuevoUsuario(p graphql.ResolveParams) (interface{}, error) {
	var in dto.RegisterRequest
	if err := decodeInput(p.Args, &in); err != nil {
		return nil, r.fail(p, err)
	}
	out, err := r.auth.RegisterUser(p.Context, in)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) autenticarUsuario(p graphql.ResolveParams) (interface{}, error) {
	var in dto.LoginRequest
	if err := decodeInput(p.Args, &in); err != nil {
		return nil, r.fail(p, err)
	}
	out, err := r.auth.Login(p.Context, in)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

// ── Productos ───────────────────────────────────────────────────────────────

func (r *Resolver) obtenerProductos(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.products.List(p.Context)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) obtenerProducto(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.products.GetByID(p.Context, argString(p, "id"))
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) buscarProducto(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.products.Search(p.Context, argString(p, "texto"))
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) nuevoProducto(p graphql.ResolveParams) (interface{}, error) {
	var in dto.CreateProductRequest
	if err := decodeInput(p.Args, &in); err != nil {
		return nil, r.fail(p, err)
	}
	out, err := r.products.Create(p.Context, in)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) actualizarProducto(p graphql.ResolveParams) (interface{}, error) {
	var in dto.UpdateProductRequest
	if err := decodeInput(p.Args, &in); err != nil {
		return nil, r.fail(p, err)
	}
	out, err := r.products.Update(p.Context, argString(p, "id"), in)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) eliminarProducto(p graphql.ResolveParams) (interface{}, error) {
	msg, err := r.products.Delete(p.Context, argString(p, "id"))
	if err != nil {
		return nil, r.fail(p, err)
	}
	return msg.Message, nil
}

// ── Clientes ────────────────────────────────────────────────────────────────

func (r *Resolver) obtenerClientes(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.clients.List(p.Context)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) obtenerClientesVendedor(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.clients.ListBySeller(p.Context, seller(p))
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) obtenerCliente(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.clients.GetByID(p.Context, seller(p), argString(p, "id"))
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) nuevoCliente(p graphql.ResolveParams) (interface{}, error) {
	var in dto.CreateClientRequest
	if err := decodeInput(p.Args, &in); err != nil {
		return nil, r.fail(p, err)
	}
	out, err := r.clients.Create(p.Context, seller(p), in)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) actualizarCliente(p graphql.ResolveParams) (interface{}, error) {
	var in dto.UpdateClientRequest
	if err := decodeInput(p.Args, &in); err != nil {
		return nil, r.fail(p, err)
	}
	out, err := r.clients.Update(p.Context, seller(p), argString(p, "id"), in)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) eliminarCliente(p graphql.ResolveParams) (interface{}, error) {
	msg, err := r.clients.Delete(p.Context, seller(p), argString(p, "id"))
	if err != nil {
		return nil, r.fail(p, err)
	}
	return msg.Message, nil
}

// ── Pedidos ─────────────────────────────────────────────────────────────────

func (r *Resolver) obtenerPedidos(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.orders.List(p.Context)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) obtenerPedidosVendedor(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.orders.ListBySeller(p.Context, seller(p))
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) obtenerPedido(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.orders.GetByID(p.Context, seller(p), argString(p, "id"))
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) obtenerPedidosEstado(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.orders.ListByStatus(p.Context, seller(p), argString(p, "estado"))
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) nuevoPedido(p graphql.ResolveParams) (interface{}, error) {
	var in dto.CreateOrderRequest
	if err := decodeInput(p.Args, &in); err != nil {
		return nil, r.fail(p, err)
	}
	out, err := r.orders.Create(p.Context, seller(p), in)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) actualizarPedido(p graphql.ResolveParams) (interface{}, error) {
	var in dto.UpdateOrderRequest
	if err := decodeInput(p.Args, &in); err != nil {
		return nil, r.fail(p, err)
	}
	out, err := r.orders.Update(p.Context, seller(p), argString(p, "id"), in)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) eliminarPedido(p graphql.ResolveParams) (interface{}, error) {
	msg, err := r.orders.Delete(p.Context, seller(p), argString(p, "id"))
	if err != nil {
		return nil, r.fail(p, err)
	}
	return msg.Message, nil
}

// pedidoCliente usa el cliente ya adjunto (obtenerPedidosVendedor) o lo busca por id.
func (r *Resolver) pedidoCliente(p graphql.ResolveParams) (interface{}, error) {
	o, ok := p.Source.(*dto.OrderResponse)
	if !ok {
		return nil, nil
	}
	if o.Cliente != nil {
		return o.Cliente, nil
	}
	c, err := r.orders.ClientOf(p.Context, o.ClienteID)
	if err != nil {
		return nil, r.fail(p, err)
	}
	if c == nil {
		return nil, nil
	}
	return c, nil
}

// ── Analítica ───────────────────────────────────────────────────────────────

func (r *Resolver) mejoresClientes(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.analytics.TopClients(p.Context)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}

func (r *Resolver) mejoresVendedores(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.analytics.TopSellers(p.Context)
	if err != nil {
		return nil, r.fail(p, err)
	}
	return out, nil
}
