package alerts

import (
	"fmt"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/domain/alert"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
)

// ToNotice projeta o alerta na forma estruturada (API /alerts/check e email).
func ToNotice(a alert.Alert) dto.AlertNotice {
	n := dto.AlertNotice{Kind: string(a.Kind), Urgent: a.Urgent()}
	if a.IsVehicle() {
		days := a.DaysRemaining
		n.VehicleID = a.VehicleID
		n.Plate = a.Plate
		n.Brand = a.Brand
		n.Model = a.Model
		n.ExpirationDate = alert.FormatDate(a.DueDate)
		n.DaysRemaining = &days
		return n
	}
	current, minimum := a.StockCurrent, a.StockMinimum
	n.MaterialID = a.MaterialID
	n.MaterialCode = a.MaterialCode
	n.Description = a.Description
	n.Unit = a.Unit
	n.StockCurrent = &current
	n.StockMinimum = &minimum
	return n
}

// ToNotices projeta uma lista; nunca devolve nil.
func ToNotices(list []alert.Alert) []dto.AlertNotice {
	out := make([]dto.AlertNotice, 0, len(list))
	for _, a := range list {
		out = append(out, ToNotice(a))
	}
	return out
}

// ToSummaryAlert projeta o alerta na forma do dashboard: texto legível + urgência.
func ToSummaryAlert(a alert.Alert) dto.SummaryAlert {
	item := dto.SummaryAlert{Type: string(a.Kind), Urgent: a.Urgent()}
	switch a.Kind {
	case alert.KindInspection:
		item.Item = vehicleLabel(a)
		if a.DaysRemaining >= 0 {
			item.Message = fmt.Sprintf("Vistoria em %d dias", a.DaysRemaining)
		} else {
			item.Message = "Vistoria expirada"
		}
	case alert.KindInsurance:
		item.Item = vehicleLabel(a)
		if a.DaysRemaining >= 0 {
			item.Message = fmt.Sprintf("Seguro expira em %d dias", a.DaysRemaining)
		} else {
			item.Message = "Seguro expirado"
		}
	default:
		unit := a.Unit
		if unit == "" {
			unit = entity.DefaultUnit
		}
		item.Item = fmt.Sprintf("%s - %s", a.MaterialCode, a.Description)
		item.Message = fmt.Sprintf("Stock baixo: %s %s (mín: %s)", a.StockCurrent.String(), unit, a.StockMinimum.String())
	}
	return item
}

// ToSummaryAlerts projeta uma lista; nunca devolve nil.
func ToSummaryAlerts(list []alert.Alert) []dto.SummaryAlert {
	out := make([]dto.SummaryAlert, 0, len(list))
	for _, a := range list {
		out = append(out, ToSummaryAlert(a))
	}
	return out
}

func vehicleLabel(a alert.Alert) string {
	return fmt.Sprintf("%s %s (%s)", a.Brand, a.Model, a.Plate)
}
