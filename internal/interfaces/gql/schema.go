package gql

import (
	"context"

	"github.com/graphql-go/graphql"
)

// NewSchema arma el esquema GraphQL con las operaciones de la API.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	pedido := r.pedidoType()
	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
	inputArg := func(t graphql.Input) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t)},
		}
	}
	idInputArgs := func(t graphql.Input) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t)},
		}
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"obtenerUsuario":          &graphql.Field{Type: usuarioType, Resolve: r.obtenerUsuario},
			"obtenerProductos":        &graphql.Field{Type: graphql.NewList(productoType), Resolve: r.obtenerProductos},
			"obtenerProducto":         &graphql.Field{Type: productoType, Args: idArg, Resolve: r.obtenerProducto},
			"obtenerClientes":         &graphql.Field{Type: graphql.NewList(clienteType), Resolve: r.obtenerClientes},
			"obtenerClientesVendedor": &graphql.Field{Type: graphql.NewList(clienteType), Resolve: r.obtenerClientesVendedor},
			"obtenerCliente":          &graphql.Field{Type: clienteType, Args: idArg, Resolve: r.obtenerCliente},
			"obtenerPedidos":          &graphql.Field{Type: graphql.NewList(pedido), Resolve: r.obtenerPedidos},
			"obtenerPedidosVendedor":  &graphql.Field{Type: graphql.NewList(pedido), Resolve: r.obtenerPedidosVendedor},
			"obtenerPedido":           &graphql.Field{Type: pedido, Args: idArg, Resolve: r.obtenerPedido},
			"obtenerPedidosEstado": &graphql.Field{
				Type: graphql.NewList(pedido),
				Args: graphql.FieldConfigArgument{
					"estado": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.obtenerPedidosEstado,
			},
			"mejoresClientes":   &graphql.Field{Type: graphql.NewList(topClienteType), Resolve: r.mejoresClientes},
			"mejoresVendedores": &graphql.Field{Type: graphql.NewList(topVendedorType), Resolve: r.mejoresVendedores},
			"buscarProducto": &graphql.Field{
				Type: graphql.NewList(productoType),
				Args: graphql.FieldConfigArgument{
					"texto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.buscarProducto,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"nuevoUsuario":       &graphql.Field{Type: usuarioType, Args: inputArg(usuarioInput), Resolve: r.nuevoUsuario},
			"autenticarUsuario":  &graphql.Field{Type: tokenType, Args: inputArg(autenticarInput), Resolve: r.autenticarUsuario},
			"nuevoProducto":      &graphql.Field{Type: productoType, Args: inputArg(productoInput), Resolve: r.nuevoProducto},
			"actualizarProducto": &graphql.Field{Type: productoType, Args: idInputArgs(actualizarProductoInput), Resolve: r.actualizarProducto},
			"eliminarProducto":   &graphql.Field{Type: graphql.String, Args: idArg, Resolve: r.eliminarProducto},
			"nuevoCliente":       &graphql.Field{Type: clienteType, Args: inputArg(clienteInput), Resolve: r.nuevoCliente},
			"actualizarCliente":  &graphql.Field{Type: clienteType, Args: idInputArgs(actualizarClienteInput), Resolve: r.actualizarCliente},
			"eliminarCliente":    &graphql.Field{Type: graphql.String, Args: idArg, Resolve: r.eliminarCliente},
			"nuevoPedido":        &graphql.Field{Type: pedido, Args: inputArg(pedidoInput), Resolve: r.nuevoPedido},
			"actualizarPedido":   &graphql.Field{Type: pedido, Args: idInputArgs(actualizarPedidoInput), Resolve: r.actualizarPedido},
			"eliminarPedido":     &graphql.Field{Type: graphql.String, Args: idArg, Resolve: r.eliminarPedido},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

// Request cuerpo de una petición GraphQL (POST JSON o parámetros GET).
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Execute ejecuta la petición contra el esquema. ctx lleva la sesión del vendedor.
func Execute(ctx context.Context, schema graphql.Schema, req Request) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
}
