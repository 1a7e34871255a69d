// Package export gera o relatório de inventário nos formatos registados (PDF, XLSX).
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/ports"
	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

// Formatos suportados.
const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
)

// SummarySource fonte do resumo (analytics.SummaryUseCase).
type SummarySource interface {
	GetSummary(ctx context.Context) (*dto.SummaryResponse, error)
}

// Document documento gerado, pronto a servir.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ReportUseCase lê o inventário e delega a renderização no formato pedido.
type ReportUseCase struct {
	summary   SummarySource
	equipment repository.EquipmentRepository
	vehicles  repository.VehicleRepository
	materials repository.MaterialRepository
	renderers map[string]ports.ReportRenderer
	now       func() time.Time
}

// NewReportUseCase constrói o caso de uso; renderers indexados por formato.
func NewReportUseCase(
	summary SummarySource,
	equipment repository.EquipmentRepository,
	vehicles repository.VehicleRepository,
	materials repository.MaterialRepository,
	renderers map[string]ports.ReportRenderer,
) *ReportUseCase {
	return &ReportUseCase{
		summary:   summary,
		equipment: equipment,
		vehicles:  vehicles,
		materials: materials,
		renderers: renderers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Build monta o relatório sem o renderizar.
func (uc *ReportUseCase) Build(ctx context.Context) (*dto.InventoryReport, error) {
	summary, err := uc.summary.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := uc.equipment.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatório: equipamentos: %w", err)
	}
	vehicles, err := uc.vehicles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatório: viaturas: %w", err)
	}
	materials, err := uc.materials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("relatório: materiais: %w", err)
	}
	return &dto.InventoryReport{
		GeneratedAt: uc.now(),
		Summary:     *summary,
		Equipment:   dto.FromEquipmentList(equipment),
		Vehicles:    dto.FromVehicleList(vehicles),
		Materials:   dto.FromMaterialList(materials),
	}, nil
}

// Export gera o documento no formato pedido. Formato desconhecido = ErrInvalidInput.
func (uc *ReportUseCase) Export(ctx context.Context, format string) (*Document, error) {
	r, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q não suportado", domain.ErrInvalidInput, format)
	}
	report, err := uc.Build(ctx)
	if err != nil {
		return nil, err
	}
	body, err := r.Render(report)
	if err != nil {
		return nil, fmt.Errorf("relatório: gerar %s: %w", format, err)
	}
	return &Document{
		Filename:    fmt.Sprintf("inventario_%s.%s", report.GeneratedAt.Format("20060102_150405"), r.Extension()),
		ContentType: r.ContentType(),
		Body:        body,
	}, nil
}
