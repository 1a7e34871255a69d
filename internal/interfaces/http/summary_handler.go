package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Armazem-api/internal/application/analytics"
)

// SummaryHandler resumo do dashboard.
type SummaryHandler struct {
	uc *appanalytics.SummaryUseCase
}

// NewSummaryHandler constrói o handler.
func NewSummaryHandler(uc *appanalytics.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// GetSummary devolve contagens por coleção e os alertas ativos.
// GET /api/summary
//
// Resposta: SummaryResponse (equipamentos, viaturas, materiais, locais, obras, alerts).
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
