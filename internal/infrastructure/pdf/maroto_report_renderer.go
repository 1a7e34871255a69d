// Package pdf gera o relatório de inventário em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + data de geração                            │
//	│  RESUMO: equipamentos / viaturas / materiais / obras         │
//	│  ALERTAS: uma linha por alerta (urgentes a vermelho)         │
//	│  TABELA: Equipamentos                                        │
//	│  TABELA: Viaturas                                            │
//	│  TABELA: Materiais                                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/application/ports"
)

var _ ports.ReportRenderer = (*MarotoReportRenderer)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 220, Green: 38, Blue: 38}
	colorAmber   = &props.Color{Red: 217, Green: 119, Blue: 6}
)

// MarotoReportRenderer implementa ports.ReportRenderer com Maroto v2.
type MarotoReportRenderer struct {
	title string
}

// NewMarotoReportRenderer constrói o renderer; title aparece no cabeçalho e nos metadados.
func NewMarotoReportRenderer(title string) *MarotoReportRenderer {
	return &MarotoReportRenderer{title: nonEmpty(title, "Relatório de Inventário")}
}

func (g *MarotoReportRenderer) ContentType() string { return "application/pdf" }
func (g *MarotoReportRenderer) Extension() string   { return "pdf" }

// Render gera o PDF e devolve os bytes.
func (g *MarotoReportRenderer) Render(report *dto.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		WithAuthor("Gestão de Armazém", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Summary))

	if len(report.Summary.Alerts) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitle(fmt.Sprintf("ALERTAS (%d)", len(report.Summary.Alerts))))
		m.AddRows(alertRows(report.Summary.Alerts)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("EQUIPAMENTOS"))
	m.AddRows(tableHeaderRow(
		heading{"Código", 2}, heading{"Descrição", 4}, heading{"Marca/Modelo", 3}, heading{"Estado", 2}, heading{"Ativo", 1},
	))
	for _, e := range report.Equipment {
		m.AddRows(detailRow(
			cell{e.Code, 2, align.Left}, cell{e.Description, 4, align.Left},
			cell{joinNonEmpty(e.Brand, e.Model), 3, align.Left},
			cell{e.Condition, 2, align.Left}, cell{yesNo(e.Active), 1, align.Center},
		))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("VIATURAS"))
	m.AddRows(tableHeaderRow(
		heading{"Matrícula", 2}, heading{"Marca/Modelo", 4}, heading{"Vistoria", 2}, heading{"Seguro", 2}, heading{"Ativa", 2},
	))
	for _, v := range report.Vehicles {
		m.AddRows(detailRow(
			cell{v.Plate, 2, align.Left}, cell{joinNonEmpty(v.Brand, v.Model), 4, align.Left},
			cell{deref(v.InspectionDue), 2, align.Center}, cell{deref(v.InsuranceDue), 2, align.Center},
			cell{yesNo(v.Active), 2, align.Center},
		))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("MATERIAIS"))
	m.AddRows(tableHeaderRow(
		heading{"Código", 2}, heading{"Descrição", 5}, heading{"Unidade", 1}, heading{"Stock", 2}, heading{"Mínimo", 2},
	))
	for _, mat := range report.Materials {
		m.AddRows(detailRow(
			cell{mat.Code, 2, align.Left}, cell{mat.Description, 5, align.Left}, cell{mat.Unit, 1, align.Center},
			cell{mat.StockCurrent.String(), 2, align.Right}, cell{mat.StockMinimum.String(), 2, align.Right},
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secções ───────────────────────────────────────────────────────────────────

func headerRow(title string, report *dto.InventoryReport) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestão de Armazém - Construção Civil", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em", props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 1,
			}),
			text.New(report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

func summaryRow(s dto.SummaryResponse) core.Row {
	block := func(label, main, detail string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(main, props.Text{Style: fontstyle.Bold, Size: 12, Top: 6}),
			text.New(detail, props.Text{Size: 7, Color: colorGray, Top: 13}),
		)
	}
	return row.New(20).Add(
		block("EQUIPAMENTOS", fmt.Sprint(s.Equipment.Total),
			fmt.Sprintf("%d ativos / %d inativos", s.Equipment.Active, s.Equipment.Inactive)),
		block("VIATURAS", fmt.Sprint(s.Vehicles.Total),
			fmt.Sprintf("%d ativas / %d inativas", s.Vehicles.Active, s.Vehicles.Inactive)),
		block("MATERIAIS", fmt.Sprint(s.Materials.Total),
			"stock total "+s.Materials.StockTotal.String()),
		block("OBRAS", fmt.Sprint(s.Sites.Total),
			fmt.Sprintf("%d ativas / %d concluídas / %d pausadas", s.Sites.Active, s.Sites.Completed, s.Sites.Paused)),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
	))
}

func alertRows(alerts []dto.SummaryAlert) []core.Row {
	rows := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		c := colorAmber
		if a.Urgent {
			c = colorRed
		}
		rows = append(rows, row.New(5).Add(
			col.New(5).Add(text.New(a.Item, props.Text{Size: 8, Top: 0.5, Left: 1})),
			col.New(7).Add(text.New(a.Message, props.Text{Size: 8, Top: 0.5, Color: c})),
		))
	}
	return rows
}

type heading struct {
	label string
	size  int
}

type cell struct {
	value string
	size  int
	align align.Type
}

func tableHeaderRow(cols ...heading) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, h := range cols {
		out = append(out, col.New(h.size).Add(text.New(h.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(out...)
}

func detailRow(cells ...cell) core.Row {
	out := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		out = append(out, col.New(c.size).Add(text.New(nonEmpty(c.value, "-"), props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(out...)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
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

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}
