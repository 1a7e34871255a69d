// Package analytics contém o caso de uso do resumo do dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Armazem-api/internal/application/alerts"
	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/internal/domain/alert"
	"github.com/jhoicas/Armazem-api/internal/domain/repository"
)

// AlertScanner fonte dos alertas do resumo (alerts.Service).
type AlertScanner interface {
	Scan(ctx context.Context, days int) ([]alert.Alert, error)
	DaysBefore() int
}

// SummaryUseCase agrega contagens e alertas para GET /api/summary.
//
// Fonte de dados: SummaryRepository (só leitura) e o motor de alertas.
// As leituras não partilham snapshot; o resultado é aproximado sob escrita concorrente.
type SummaryUseCase struct {
	totals repository.SummaryRepository
	alerts AlertScanner
}

// NewSummaryUseCase constrói o caso de uso.
func NewSummaryUseCase(totals repository.SummaryRepository, alerts AlertScanner) *SummaryUseCase {
	return &SummaryUseCase{totals: totals, alerts: alerts}
}

// GetSummary corre as duas leituras em paralelo e monta o resumo.
func (uc *SummaryUseCase) GetSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	type totalsResult struct {
		t   *repository.InventoryTotals
		err error
	}
	type alertsResult struct {
		list []alert.Alert
		err  error
	}

	totalsCh := make(chan totalsResult, 1)
	alertsCh := make(chan alertsResult, 1)

	go func() {
		t, err := uc.totals.Totals(ctx)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		list, err := uc.alerts.Scan(ctx, uc.alerts.DaysBefore())
		alertsCh <- alertsResult{list, err}
	}()

	tr := <-totalsCh
	ar := <-alertsCh

	if tr.err != nil {
		return nil, fmt.Errorf("resumo: totais: %w", tr.err)
	}
	if ar.err != nil {
		return nil, fmt.Errorf("resumo: alertas: %w", ar.err)
	}

	t := tr.t
	return &dto.SummaryResponse{
		Equipment: dto.EquipmentCounts{
			Total:    t.EquipmentTotal,
			Active:   t.EquipmentActive,
			Inactive: t.EquipmentTotal - t.EquipmentActive,
		},
		Vehicles: dto.VehicleCounts{
			Total:    t.VehicleTotal,
			Active:   t.VehicleActive,
			Inactive: t.VehicleTotal - t.VehicleActive,
		},
		Materials: dto.MaterialTotals{
			Total:      t.MaterialTotal,
			StockTotal: t.StockTotal,
		},
		Locations: dto.LocationCounts{
			Total:      t.LocationTotal,
			Warehouses: t.Warehouses,
			Workshops:  t.Workshops,
			Sites:      t.SiteLocations,
		},
		Sites: dto.SiteCounts{
			Total:     t.SiteTotal,
			Active:    t.SitesActive,
			Completed: t.SitesCompleted,
			Paused:    t.SitesPaused,
		},
		Alerts: alerts.ToSummaryAlerts(ar.list),
	}, nil
}
