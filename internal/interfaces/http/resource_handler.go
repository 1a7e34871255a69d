package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
)

// ResourceService CRUD comum a equipamentos, viaturas, materiais, locais e obras.
type ResourceService[Req, Resp any] interface {
	Create(ctx context.Context, in Req) (*Resp, error)
	GetByID(ctx context.Context, id string) (*Resp, error)
	List(ctx context.Context, q string) ([]Resp, error)
	Update(ctx context.Context, id string, in Req) (*Resp, error)
	Delete(ctx context.Context, id string) error
}

// ResourceHandler expõe um ResourceService em GET/POST/PUT/DELETE.
type ResourceHandler[Req, Resp any] struct {
	svc     ResourceService[Req, Resp]
	deleted string // mensagem de DELETE bem-sucedido
}

// NewResourceHandler constrói o handler; deleted é a mensagem devolvida ao eliminar.
func NewResourceHandler[Req, Resp any](svc ResourceService[Req, Resp], deleted string) *ResourceHandler[Req, Resp] {
	return &ResourceHandler[Req, Resp]{svc: svc, deleted: deleted}
}

// Register monta as rotas no grupo.
func (h *ResourceHandler[Req, Resp]) Register(g fiber.Router) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// List GET /  (?q= filtra sem acentos)
func (h *ResourceHandler[Req, Resp]) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	out, err := h.svc.List(c.Context(), q.Q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create POST /
func (h *ResourceHandler[Req, Resp]) Create(c *fiber.Ctx) error {
	var in Req
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /:id
func (h *ResourceHandler[Req, Resp]) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /:id (substituição completa)
func (h *ResourceHandler[Req, Resp]) Update(c *fiber.Ctx) error {
	var in Req
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /:id
func (h *ResourceHandler[Req, Resp]) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: h.deleted})
}
