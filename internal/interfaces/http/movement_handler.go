package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/movement"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

// MovementHandler diários de movimentos (ativos, stock e utilização de viaturas).
type MovementHandler struct {
	p *movement.Processor
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(p *movement.Processor) *MovementHandler {
	return &MovementHandler{p: p}
}

// Register monta as rotas em /movimentos.
func (h *MovementHandler) Register(g fiber.Router) {
	g.Get("/ativos", h.ListAssets)
	g.Post("/ativos", h.RecordAsset)
	g.Get("/stock", h.ListStock)
	g.Post("/stock", h.RecordStock)
	g.Get("/viaturas", h.ListUsages)
	g.Post("/viaturas", h.RecordUsage)
}

// movementFilter lê ?<refParam>=&limit=&offset=; os limites são normalizados pelo processador.
func movementFilter(c *fiber.Ctx, refParam string) repository.MovementFilter {
	return repository.MovementFilter{
		RefID:  c.Query(refParam),
		Limit:  c.QueryInt("limit", movement.DefaultListLimit),
		Offset: c.QueryInt("offset", 0),
	}
}

// RecordAsset godoc
// @Summary      Registar movimento de ativo
// @Description  Grava o movimento; com destino_id e tipo_ativo=equipamento muda o local do equipamento.
// @Tags         movimentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssetMovementRequest  true  "Movimento"
// @Success      201   {object}  dto.AssetMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimentos/ativos [post]
func (h *MovementHandler) RecordAsset(c *fiber.Ctx) error {
	var in dto.AssetMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.p.RecordAssetMovement(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAssets GET /movimentos/ativos?ativo_id=
func (h *MovementHandler) ListAssets(c *fiber.Ctx) error {
	out, err := h.p.ListAssetMovements(c.Context(), movementFilter(c, "ativo_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecordStock godoc
// @Summary      Registar movimento de stock
// @Description  Entrada soma a quantidade ao stock do material; qualquer outro tipo subtrai.
// @Tags         movimentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "Movimento"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimentos/stock [post]
func (h *MovementHandler) RecordStock(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.p.RecordStockMovement(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListStock GET /movimentos/stock?material_id=
func (h *MovementHandler) ListStock(c *fiber.Ctx) error {
	out, err := h.p.ListStockMovements(c.Context(), movementFilter(c, "material_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecordUsage POST /movimentos/viaturas (só regista; não altera a viatura)
func (h *MovementHandler) RecordUsage(c *fiber.Ctx) error {
	var in dto.VehicleUsageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.p.RecordVehicleUsage(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUsages GET /movimentos/viaturas?viatura_id=
func (h *MovementHandler) ListUsages(c *fiber.Ctx) error {
	out, err := h.p.ListVehicleUsages(c.Context(), movementFilter(c, "viatura_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
