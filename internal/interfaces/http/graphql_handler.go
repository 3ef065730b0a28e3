package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/interfaces/gql"
)

// GraphQLHandler sirve el esquema por POST (cuerpo JSON) y GET (?query=).
// Los errores de resolución viajan en el cuerpo con estado 200; solo una petición
// mal formada responde 400.
type GraphQLHandler struct {
	schema graphql.Schema
}

// NewGraphQLHandler construye el handler.
func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// Post ejecuta {query, operationName, variables} del cuerpo.
func (h *GraphQLHandler) Post(c *fiber.Ctx) error {
	var req gql.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.execute(c, req)
}

// Get ejecuta la consulta de los parámetros query, operationName y variables (JSON).
func (h *GraphQLHandler) Get(c *fiber.Ctx) error {
	req := gql.Request{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}
	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_VARIABLES", Message: "variables debe ser un objeto JSON"})
		}
	}
	return h.execute(c, req)
}

func (h *GraphQLHandler) execute(c *fiber.Ctx, req gql.Request) error {
	if req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_QUERY", Message: "query requerido"})
	}
	return c.JSON(gql.Execute(c.UserContext(), h.schema, req))
}
