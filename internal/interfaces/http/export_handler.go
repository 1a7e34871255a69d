package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Armazem-api/internal/application/export"
)

// ExportHandler descarga do relatório de inventário.
type ExportHandler struct {
	uc *export.ReportUseCase
}

// NewExportHandler constrói o handler.
func NewExportHandler(uc *export.ReportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// PDF GET /api/export/pdf
func (h *ExportHandler) PDF(c *fiber.Ctx) error { return h.send(c, export.FormatPDF) }

// Excel GET /api/export/excel
func (h *ExportHandler) Excel(c *fiber.Ctx) error { return h.send(c, export.FormatExcel) }

func (h *ExportHandler) send(c *fiber.Ctx, format string) error {
	doc, err := h.uc.Export(c.Context(), format)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	return c.Send(doc.Body)
}
