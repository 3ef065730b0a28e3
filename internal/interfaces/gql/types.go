package gql

import "github.com/graphql-go/graphql"

// Tipos de salida. Los campos se resuelven por etiqueta json de los DTO.

var usuarioType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Usuario",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"nombre":   &graphql.Field{Type: graphql.String},
		"apellido": &graphql.Field{Type: graphql.String},
		"email":    &graphql.Field{Type: graphql.String},
		"creado":   &graphql.Field{Type: graphql.DateTime},
	},
})

var tokenType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Token",
	Fields: graphql.Fields{
		"token": &graphql.Field{Type: graphql.String},
	},
})

var productoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Producto",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"nombre":     &graphql.Field{Type: graphql.String},
		"existencia": &graphql.Field{Type: graphql.Int},
		"precio":     &graphql.Field{Type: Decimal},
		"creado":     &graphql.Field{Type: graphql.DateTime},
	},
})

var clienteType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Cliente",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"nombre":   &graphql.Field{Type: graphql.String},
		"apellido": &graphql.Field{Type: graphql.String},
		"empresa":  &graphql.Field{Type: graphql.String},
		"email":    &graphql.Field{Type: graphql.String},
		"telefono": &graphql.Field{Type: graphql.String},
		"vendedor": &graphql.Field{Type: graphql.ID},
		"creado":   &graphql.Field{Type: graphql.DateTime},
	},
})

var estadoPedidoEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "EstadoPedido",
	Values: graphql.EnumValueConfigMap{
		"PENDIENTE":  &graphql.EnumValueConfig{Value: "PENDIENTE"},
		"COMPLETADO": &graphql.EnumValueConfig{Value: "COMPLETADO"},
		"CANCELADO":  &graphql.EnumValueConfig{Value: "CANCELADO"},
	},
})

var pedidoGrupoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PedidoGrupo",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.ID},
		"cantidad": &graphql.Field{Type: graphql.Int},
		"nombre":   &graphql.Field{Type: graphql.String},
		"precio":   &graphql.Field{Type: Decimal},
	},
})

func (r *Resolver) pedidoType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Pedido",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"pedido":   &graphql.Field{Type: graphql.NewList(pedidoGrupoType)},
			"total":    &graphql.Field{Type: Decimal},
			"cliente":  &graphql.Field{Type: clienteType, Resolve: r.pedidoCliente},
			"vendedor": &graphql.Field{Type: graphql.ID},
			"estado":   &graphql.Field{Type: estadoPedidoEnum},
			"creado":   &graphql.Field{Type: graphql.DateTime},
		},
	})
}

var topClienteType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TopCliente",
	Fields: graphql.Fields{
		"total":   &graphql.Field{Type: Decimal},
		"cliente": &graphql.Field{Type: graphql.NewList(clienteType)},
	},
})

var topVendedorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TopVendedor",
	Fields: graphql.Fields{
		"total":    &graphql.Field{Type: Decimal},
		"vendedor": &graphql.Field{Type: graphql.NewList(usuarioType)},
	},
})

// Tipos de entrada.

var usuarioInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UsuarioInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"apellido": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var autenticarInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "AutenticarInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var productoInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductoInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nombre":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"existencia": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"precio":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(Decimal)},
	},
})

var actualizarProductoInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ActualizarProductoInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nombre":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"existencia": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"precio":     &graphql.InputObjectFieldConfig{Type: Decimal},
	},
})

var clienteInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ClienteInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"apellido": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"empresa":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"telefono": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var actualizarClienteInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ActualizarClienteInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"apellido": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"empresa":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"telefono": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var pedidoProductoInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PedidoProductoInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"cantidad": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var pedidoInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PedidoInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"pedido":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(pedidoProductoInput)))},
		"total":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(Decimal)},
		"cliente": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"estado":  &graphql.InputObjectFieldConfig{Type: estadoPedidoEnum},
	},
})

var actualizarPedidoInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ActualizarPedidoInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"pedido":  &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(pedidoProductoInput))},
		"total":   &graphql.InputObjectFieldConfig{Type: Decimal},
		"cliente": &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"estado":  &graphql.InputObjectFieldConfig{Type: estadoPedidoEnum},
	},
})
