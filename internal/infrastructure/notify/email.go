// Package notify envia os alertas por email (Resend ou SMTP).
package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
)

// Cores do estado na tabela.
const (
	colorExpired  = "#dc2626"
	colorExpiring = "#f59e0b"
)

var kindLabels = map[string]string{
	"vistoria": "Vistoria",
	"seguro":   "Seguro",
	"stock":    "Stock",
}

type vehicleRow struct {
	Plate, Vehicle, Kind, Date, Status, Color string
}

type stockRow struct {
	Code, Description, Current, Minimum, Color string
}

type emailData struct {
	Vehicles []vehicleRow
	Stock    []stockRow
}

var emailTemplate = template.Must(template.New("alerts").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background: #f4f4f5; padding: 20px;">
  <div style="max-width: 640px; margin: 0 auto; background: #ffffff; border-radius: 8px; overflow: hidden;">
    <div style="background: #1e3a5f; color: #ffffff; padding: 20px;">
      <h1 style="margin: 0; font-size: 20px;">Alertas de Viaturas</h1>
      <p style="margin: 4px 0 0; font-size: 13px;">Gestão de Armazém - Construção Civil</p>
    </div>
    <div style="padding: 20px;">
      {{- if .Vehicles}}
      <table style="width: 100%; border-collapse: collapse; font-size: 13px;">
        <thead>
          <tr style="background: #f1f5f9;">
            <th style="padding: 8px; text-align: left;">Matrícula</th>
            <th style="padding: 8px; text-align: left;">Viatura</th>
            <th style="padding: 8px; text-align: left;">Tipo</th>
            <th style="padding: 8px; text-align: left;">Data</th>
            <th style="padding: 8px; text-align: left;">Estado</th>
          </tr>
        </thead>
        <tbody>
          {{- range .Vehicles}}
          <tr style="border-bottom: 1px solid #e2e8f0;">
            <td style="padding: 8px; font-weight: bold;">{{.Plate}}</td>
            <td style="padding: 8px;">{{.Vehicle}}</td>
            <td style="padding: 8px;">{{.Kind}}</td>
            <td style="padding: 8px;">{{.Date}}</td>
            <td style="padding: 8px; color: {{.Color}}; font-weight: bold;">{{.Status}}</td>
          </tr>
          {{- end}}
        </tbody>
      </table>
      {{- end}}
      {{- if .Stock}}
      <h2 style="font-size: 16px; margin: 20px 0 8px;">Stock baixo</h2>
      <table style="width: 100%; border-collapse: collapse; font-size: 13px;">
        <thead>
          <tr style="background: #f1f5f9;">
            <th style="padding: 8px; text-align: left;">Código</th>
            <th style="padding: 8px; text-align: left;">Material</th>
            <th style="padding: 8px; text-align: right;">Atual</th>
            <th style="padding: 8px; text-align: right;">Mínimo</th>
          </tr>
        </thead>
        <tbody>
          {{- range .Stock}}
          <tr style="border-bottom: 1px solid #e2e8f0;">
            <td style="padding: 8px; font-weight: bold;">{{.Code}}</td>
            <td style="padding: 8px;">{{.Description}}</td>
            <td style="padding: 8px; text-align: right; color: {{.Color}}; font-weight: bold;">{{.Current}}</td>
            <td style="padding: 8px; text-align: right;">{{.Minimum}}</td>
          </tr>
          {{- end}}
        </tbody>
      </table>
      {{- end}}
    </div>
    <div style="padding: 12px 20px; font-size: 11px; color: #64748b; background: #f8fafc;">
      Este email foi enviado automaticamente pelo sistema de Gestão de Armazém.
    </div>
  </div>
</body>
</html>
`))

// Subject assunto do email para n alertas.
func Subject(n int) string {
	return fmt.Sprintf("⚠️ Alertas de Viaturas - %d alerta(s)", n)
}

// RenderAlertEmail gera o corpo HTML: tabela de prazos de viaturas e, se houver, de stock baixo.
// Prazos com dias <= 0 aparecem como EXPIRADO a vermelho; os restantes a âmbar.
func RenderAlertEmail(notices []dto.AlertNotice) (string, error) {
	var data emailData
	for _, n := range notices {
		if n.DaysRemaining != nil {
			days := *n.DaysRemaining
			row := vehicleRow{
				Plate:   n.Plate,
				Vehicle: n.Brand + " " + n.Model,
				Kind:    kindLabels[n.Kind],
				Date:    n.ExpirationDate,
				Status:  fmt.Sprintf("Expira em %d dias", days),
				Color:   colorExpiring,
			}
			if days <= 0 {
				row.Status = "EXPIRADO"
				row.Color = colorExpired
			}
			data.Vehicles = append(data.Vehicles, row)
			continue
		}
		row := stockRow{Code: n.MaterialCode, Description: n.Description, Color: colorExpiring}
		if n.StockCurrent != nil {
			row.Current = n.StockCurrent.String() + " " + n.Unit
		}
		if n.StockMinimum != nil {
			row.Minimum = n.StockMinimum.String()
		}
		if n.Urgent {
			row.Color = colorExpired
		}
		data.Stock = append(data.Stock, row)
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("notify: gerar email: %w", err)
	}
	return buf.String(), nil
}
