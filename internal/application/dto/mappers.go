package dto

import "github.com/jhoicas/pedidos-api/internal/domain/entity"

// Conversores entidad -> DTO compartidos por los casos de uso.

func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Nombre: u.Nombre, Apellido: u.Apellido, Email: u.Email, Creado: u.Creado}
}

func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{ID: p.ID, Nombre: p.Nombre, Existencia: p.Existencia, Precio: p.Precio, Creado: p.Creado}
}

func ToClientResponse(c *entity.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:       c.ID,
		Nombre:   c.Nombre,
		Apellido: c.Apellido,
		Empresa:  c.Empresa,
		Email:    c.Email,
		Telefono: c.Telefono,
		Vendedor: c.Vendedor,
		Creado:   c.Creado,
	}
}

func ToOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Cantidad:  it.Cantidad,
			Nombre:    it.Nombre,
			Precio:    it.Precio,
		})
	}
	return &OrderResponse{
		ID:        o.ID,
		Pedido:    items,
		Total:     o.Total,
		ClienteID: o.Cliente,
		Vendedor:  o.Vendedor,
		Estado:    o.Estado,
		Creado:    o.Creado,
	}
}
