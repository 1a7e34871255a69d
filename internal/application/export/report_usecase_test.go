package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/ports"
	"github.com/jhoicas/Armazem-api/internal/domain"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
	"github.com/jhoicas/Armazem-api/internal/infrastructure/memory"
)

type stubSummary struct{}

func (stubSummary) GetSummary(context.Context) (*dto.SummaryResponse, error) {
	return &dto.SummaryResponse{Equipment: dto.EquipmentCounts{Total: 1}, Alerts: []dto.SummaryAlert{}}, nil
}

type recordingRenderer struct {
	got *dto.InventoryReport
}

func (r *recordingRenderer) Render(report *dto.InventoryReport) ([]byte, error) {
	r.got = report
	return []byte("%PDF-fake"), nil
}
func (r *recordingRenderer) ContentType() string { return "application/pdf" }
func (r *recordingRenderer) Extension() string   { return "pdf" }

func TestExport(t *testing.T) {
	s := memory.NewStore()
	require.NoError(t, s.Equipment().Create(context.Background(), &entity.Equipment{ID: "e1", Code: "EQ-1", Description: "Betoneira"}))

	r := &recordingRenderer{}
	uc := NewReportUseCase(stubSummary{}, s.Equipment(), s.Vehicles(), s.Materials(), map[string]ports.ReportRenderer{FormatPDF: r})
	uc.now = func() time.Time { return time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC) }

	doc, err := uc.Export(context.Background(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "inventario_20260310_140500.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, []byte("%PDF-fake"), doc.Body)

	require.NotNil(t, r.got)
	require.Len(t, r.got.Equipment, 1)
	assert.Equal(t, "EQ-1", r.got.Equipment[0].Code)
	assert.NotNil(t, r.got.Vehicles)
	assert.Equal(t, 1, r.got.Summary.Equipment.Total)
}

func TestExport_FormatoDesconhecido(t *testing.T) {
	s := memory.NewStore()
	uc := NewReportUseCase(stubSummary{}, s.Equipment(), s.Vehicles(), s.Materials(), nil)
	_, err := uc.Export(context.Background(), "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
