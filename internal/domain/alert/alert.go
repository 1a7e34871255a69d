// Package alert deteta prazos de vistoria/seguro a expirar e materiais com stock baixo.
// É cálculo puro sobre os registos recebidos: não lê nem escreve no armazenamento.
package alert

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Armazem-api/internal/domain/entity"
)

// Kind tipo de alerta.
type Kind string

const (
	KindInspection Kind = "vistoria"
	KindInsurance  Kind = "seguro"
	KindStock      Kind = "stock"
)

// Alert representação interna única de um alerta. As projeções para os
// diferentes consumidores (API estruturada, dashboard, email) partem daqui.
type Alert struct {
	Kind Kind

	// Alertas de viatura (vistoria/seguro)
	VehicleID     string
	Plate         string
	Brand         string
	Model         string
	DueDate       time.Time
	DaysRemaining int // negativo = já expirado

	// Alertas de stock
	MaterialID   string
	MaterialCode string
	Description  string
	Unit         string
	StockCurrent decimal.Decimal
	StockMinimum decimal.Decimal
}

// IsVehicle indica se o alerta é de prazo de viatura.
func (a Alert) IsVehicle() bool {
	return a.Kind == KindInspection || a.Kind == KindInsurance
}

// Urgent: prazo já ultrapassado ou stock a zero.
func (a Alert) Urgent() bool {
	if a.IsVehicle() {
		return a.DaysRemaining < 0
	}
	return a.StockCurrent.IsZero()
}

// Scan percorre viaturas e materiais e devolve os alertas pela ordem de entrada:
// primeiro viaturas (vistoria antes de seguro), depois materiais.
// Viaturas inativas são ignoradas; datas ausentes ou malformadas não geram alerta.
func Scan(vehicles []*entity.Vehicle, materials []*entity.Material, thresholdDays int, today time.Time) []Alert {
	alerts := make([]Alert, 0)
	alerts = append(alerts, ScanVehicles(vehicles, thresholdDays, today)...)
	alerts = append(alerts, ScanMaterials(materials)...)
	return alerts
}

// ScanVehicles alerta quando due - today <= thresholdDays, sem limite inferior.
func ScanVehicles(vehicles []*entity.Vehicle, thresholdDays int, today time.Time) []Alert {
	var alerts []Alert
	for _, v := range vehicles {
		if v == nil || !v.Active {
			continue
		}
		if a, ok := dueAlert(v, KindInspection, v.InspectionDue, thresholdDays, today); ok {
			alerts = append(alerts, a)
		}
		if a, ok := dueAlert(v, KindInsurance, v.InsuranceDue, thresholdDays, today); ok {
			alerts = append(alerts, a)
		}
	}
	return alerts
}

// ScanMaterials alerta quando stock_atual <= stock_minimo e stock_minimo > 0.
// Mínimo zero significa "sem controlo" e nunca alerta.
func ScanMaterials(materials []*entity.Material) []Alert {
	var alerts []Alert
	for _, m := range materials {
		if m == nil || !m.StockMinimum.IsPositive() {
			continue
		}
		if m.StockCurrent.GreaterThan(m.StockMinimum) {
			continue
		}
		alerts = append(alerts, Alert{
			Kind:         KindStock,
			MaterialID:   m.ID,
			MaterialCode: m.Code,
			Description:  m.Description,
			Unit:         m.Unit,
			StockCurrent: m.StockCurrent,
			StockMinimum: m.StockMinimum,
		})
	}
	return alerts
}

func dueAlert(v *entity.Vehicle, kind Kind, raw *string, thresholdDays int, today time.Time) (Alert, bool) {
	if raw == nil || *raw == "" {
		return Alert{}, false
	}
	due, ok := ParseDueDate(*raw)
	if !ok {
		return Alert{}, false
	}
	days := DaysBetween(today, due)
	if days > thresholdDays {
		return Alert{}, false
	}
	return Alert{
		Kind:          kind,
		VehicleID:     v.ID,
		Plate:         v.Plate,
		Brand:         v.Brand,
		Model:         v.Model,
		DueDate:       due,
		DaysRemaining: days,
	}, true
}
