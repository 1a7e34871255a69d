package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/usecase"
)

// UploadHandler carregamento e leitura de fotografias.
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

// NewUploadHandler constrói o handler.
func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Carregar fotografia
// @Tags         uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Imagem"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file obrigatório"})
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	out, err := h.uc.Upload(c.Context(), fh.Filename, fh.Header.Get(fiber.HeaderContentType), f, fh.Size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Serve GET /api/uploads/:filename (público)
func (h *UploadHandler) Serve(c *fiber.Ctx) error {
	rc, info, err := h.uc.Open(c.Context(), c.Params("filename"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, info.ContentType)
	return c.SendStream(rc, int(info.Size))
}
