package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/usecase"
)

// SiteHandler CRUD de obras mais os recursos afetos.
type SiteHandler struct {
	*ResourceHandler[dto.SiteRequest, dto.SiteResponse]
	uc *usecase.SiteUseCase
}

// NewSiteHandler constrói o handler.
func NewSiteHandler(uc *usecase.SiteUseCase) *SiteHandler {
	return &SiteHandler{
		ResourceHandler: NewResourceHandler[dto.SiteRequest, dto.SiteResponse](uc, "Obra eliminada"),
		uc:              uc,
	}
}

// Register monta o CRUD e /:id/recursos.
func (h *SiteHandler) Register(g fiber.Router) {
	h.ResourceHandler.Register(g)
	g.Get("/:id/recursos", h.Resources)
}

// Resources godoc
// @Summary      Recursos de uma obra
// @Description  Locais da obra e os equipamentos, viaturas e materiais que lá estão.
// @Tags         obras
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da obra"
// @Success      200  {object}  dto.SiteResourcesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obras/{id}/recursos [get]
func (h *SiteHandler) Resources(c *fiber.Ctx) error {
	out, err := h.uc.Resources(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
