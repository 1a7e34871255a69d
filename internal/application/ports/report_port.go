package ports

import "github.com/jhoicas/Armazem-api/internal/application/dto"

// ReportRenderer transforma o relatório de inventário num documento (PDF, XLSX).
type ReportRenderer interface {
	Render(report *dto.InventoryReport) ([]byte, error)
	ContentType() string
	Extension() string
}
