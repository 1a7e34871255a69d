package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
)

func TestRender_GeraPDF(t *testing.T) {
	due := "2026-04-01"
	report := &dto.InventoryReport{
		GeneratedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Summary: dto.SummaryResponse{
			Equipment: dto.EquipmentCounts{Total: 1, Active: 1},
			Alerts:    []dto.SummaryAlert{{Type: "stock", Item: "CIM - Cimento", Message: "Stock baixo: 0 saco (mín: 10)", Urgent: true}},
		},
		Equipment: []dto.EquipmentResponse{{Code: "EQ-1", Description: "Betoneira", Brand: "Imer", Active: true}},
		Vehicles:  []dto.VehicleResponse{{Plate: "AA-11-BB", Brand: "Renault", Model: "Master", InspectionDue: &due}},
		Materials: []dto.MaterialResponse{{Code: "CIM", Description: "Cimento", StockCurrent: decimal.Zero, StockMinimum: decimal.NewFromInt(10)}},
	}

	r := NewMarotoReportRenderer("")
	out, err := r.Render(report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, "pdf", r.Extension())
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "Renault Master", joinNonEmpty("Renault", "Master"))
	assert.Equal(t, "Master", joinNonEmpty("", "Master"))
	assert.Equal(t, "Renault", joinNonEmpty("Renault", ""))
}
