// Package spreadsheet gera o relatório de inventário em XLSX.
package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/ports"
)

var _ ports.ReportRenderer = (*ExcelReportRenderer)(nil)

// Folhas do livro.
const (
	SheetSummary   = "Resumo"
	SheetEquipment = "Equipamentos"
	SheetVehicles  = "Viaturas"
	SheetMaterials = "Materiais"
)

// ExcelReportRenderer implementa ports.ReportRenderer com excelize.
type ExcelReportRenderer struct{}

// NewExcelReportRenderer constrói o renderer.
func NewExcelReportRenderer() *ExcelReportRenderer { return &ExcelReportRenderer{} }

func (r *ExcelReportRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (r *ExcelReportRenderer) Extension() string { return "xlsx" }

// Render escreve uma folha de resumo e uma folha por coleção.
func (r *ExcelReportRenderer) Render(report *dto.InventoryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: folha de resumo: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	urgentStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: "#DC2626"}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	s := report.Summary
	summary := [][]any{
		{"Relatório de Inventário", report.GeneratedAt.Format("02/01/2006 15:04")},
		{},
		{"Indicador", "Total", "Detalhe"},
		{"Equipamentos", s.Equipment.Total, fmt.Sprintf("%d ativos / %d inativos", s.Equipment.Active, s.Equipment.Inactive)},
		{"Viaturas", s.Vehicles.Total, fmt.Sprintf("%d ativas / %d inativas", s.Vehicles.Active, s.Vehicles.Inactive)},
		{"Materiais", s.Materials.Total, "stock total " + s.Materials.StockTotal.String()},
		{"Locais", s.Locations.Total, fmt.Sprintf("%d armazéns / %d oficinas / %d obras", s.Locations.Warehouses, s.Locations.Workshops, s.Locations.Sites)},
		{"Obras", s.Sites.Total, fmt.Sprintf("%d ativas / %d concluídas / %d pausadas", s.Sites.Active, s.Sites.Completed, s.Sites.Paused)},
		{},
		{"Alerta", "Item", "Mensagem"},
	}
	for _, a := range s.Alerts {
		summary = append(summary, []any{a.Type, a.Item, a.Message})
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return nil, err
	}
	for _, header := range []int{3, 10} {
		_ = f.SetCellStyle(SheetSummary, fmt.Sprintf("A%d", header), fmt.Sprintf("C%d", header), headerStyle)
	}
	for i, a := range s.Alerts {
		if a.Urgent {
			cell := fmt.Sprintf("C%d", 11+i)
			_ = f.SetCellStyle(SheetSummary, cell, cell, urgentStyle)
		}
	}
	setWidths(f, SheetSummary, []float64{22, 36, 50})

	equipment := [][]any{{"Código", "Descrição", "Marca", "Modelo", "Categoria", "N.º Série", "Responsável", "Estado", "Ativo", "Local"}}
	for _, e := range report.Equipment {
		equipment = append(equipment, []any{
			e.Code, e.Description, e.Brand, e.Model, e.Category, e.SerialNumber,
			e.Responsible, e.Condition, yesNo(e.Active), deref(e.LocationID),
		})
	}
	if err := addTable(f, SheetEquipment, equipment, headerStyle, []float64{14, 36, 16, 16, 16, 18, 20, 12, 8, 38}); err != nil {
		return nil, err
	}

	vehicles := [][]any{{"Matrícula", "Marca", "Modelo", "Combustível", "Vistoria", "Seguro", "Ativa", "Local"}}
	for _, v := range report.Vehicles {
		vehicles = append(vehicles, []any{
			v.Plate, v.Brand, v.Model, v.Fuel, deref(v.InspectionDue), deref(v.InsuranceDue),
			yesNo(v.Active), deref(v.LocationID),
		})
	}
	if err := addTable(f, SheetVehicles, vehicles, headerStyle, []float64{12, 16, 16, 12, 12, 12, 8, 38}); err != nil {
		return nil, err
	}

	materials := [][]any{{"Código", "Descrição", "Unidade", "Stock Atual", "Stock Mínimo", "Ativo", "Local"}}
	for _, m := range report.Materials {
		materials = append(materials, []any{
			m.Code, m.Description, m.Unit, m.StockCurrent.InexactFloat64(), m.StockMinimum.InexactFloat64(),
			yesNo(m.Active), deref(m.LocationID),
		})
	}
	if err := addTable(f, SheetMaterials, materials, headerStyle, []float64{14, 40, 10, 12, 12, 8, 38}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escrever livro: %w", err)
	}
	return buf.Bytes(), nil
}

// addTable cria a folha, escreve as linhas e formata o cabeçalho (linha 1).
func addTable(f *excelize.File, sheet string, rows [][]any, headerStyle int, widths []float64) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("xlsx: folha %s: %w", sheet, err)
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	last, _ := excelize.ColumnNumberToName(len(rows[0]))
	_ = f.SetCellStyle(sheet, "A1", last+"1", headerStyle)
	setWidths(f, sheet, widths)
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("xlsx: %s linha %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func setWidths(f *excelize.File, sheet string, widths []float64) {
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, w)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}
