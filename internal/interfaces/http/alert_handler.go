package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Armazem-api/internal/application/alerts"
	"github.com/jhoicas/Armazem-api/internal/application/dto"
)

// AlertHandler verificação e envio de alertas.
type AlertHandler struct {
	svc *alerts.Service
}

// NewAlertHandler constrói o handler.
func NewAlertHandler(svc *alerts.Service) *AlertHandler {
	return &AlertHandler{svc: svc}
}

// Check godoc
// @Summary      Verificar alertas
// @Description  Prazos de vistoria/seguro dentro da janela (inclui expirados) e materiais com stock baixo.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Janela em dias (por omissão ALERT_DAYS_BEFORE)"
// @Success      200   {object}  dto.AlertCheckResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/alerts/check [get]
func (h *AlertHandler) Check(c *fiber.Ctx) error {
	var days *int
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "days tem de ser um inteiro"})
		}
		days = &n
	}
	out, err := h.svc.Check(c.Context(), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Send godoc
// @Summary      Enviar alertas por email
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertSendResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/alerts/send [post]
func (h *AlertHandler) Send(c *fiber.Ctx) error {
	out, err := h.svc.Send(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
