package alert_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Armazem-api/internal/domain/alert"
	"github.com/jhoicas/Armazem-api/internal/domain/entity"
)

var today = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func day(offset int) string {
	return today.AddDate(0, 0, offset).Format("2006-01-02")
}

func vehicle(id string, inspection, insurance *string) *entity.Vehicle {
	return &entity.Vehicle{
		ID: id, Plate: "AA-00-" + id, Brand: "Renault", Model: "Master",
		Active: true, InspectionDue: inspection, InsuranceDue: insurance,
	}
}

func material(id string, current, minimum int64) *entity.Material {
	return &entity.Material{
		ID: id, Code: "MAT-" + id, Description: "Cimento", Unit: "saco",
		StockCurrent: decimal.NewFromInt(current), StockMinimum: decimal.NewFromInt(minimum),
	}
}

func TestScanVehicles_LimiteInclusivo(t *testing.T) {
	alerts := alert.ScanVehicles([]*entity.Vehicle{vehicle("1", strPtr(day(7)), nil)}, 7, today)

	require.Len(t, alerts, 1)
	assert.Equal(t, alert.KindInspection, alerts[0].Kind)
	assert.Equal(t, 7, alerts[0].DaysRemaining)
	assert.False(t, alerts[0].Urgent())
}

func TestScanVehicles_ForaDaJanela(t *testing.T) {
	alerts := alert.ScanVehicles([]*entity.Vehicle{vehicle("1", strPtr(day(8)), nil)}, 7, today)
	assert.Empty(t, alerts)
}

func TestScanVehicles_JaExpirado(t *testing.T) {
	alerts := alert.ScanVehicles([]*entity.Vehicle{vehicle("1", strPtr(day(-5)), nil)}, 7, today)

	require.Len(t, alerts, 1)
	assert.Equal(t, -5, alerts[0].DaysRemaining)
	assert.True(t, alerts[0].Urgent())
}

func TestScanVehicles_ExpiradoHaMuitoTempoContinuaAAlertar(t *testing.T) {
	alerts := alert.ScanVehicles([]*entity.Vehicle{vehicle("1", nil, strPtr(day(-400)))}, 7, today)

	require.Len(t, alerts, 1)
	assert.Equal(t, alert.KindInsurance, alerts[0].Kind)
	assert.Equal(t, -400, alerts[0].DaysRemaining)
}

func TestScanVehicles_DuasDatasNaMesmaViatura(t *testing.T) {
	alerts := alert.ScanVehicles([]*entity.Vehicle{vehicle("1", strPtr(day(1)), strPtr(day(2)))}, 7, today)

	require.Len(t, alerts, 2)
	assert.Equal(t, alert.KindInspection, alerts[0].Kind)
	assert.Equal(t, alert.KindInsurance, alerts[1].Kind)
}

func TestScanVehicles_DataMalformadaIgnorada(t *testing.T) {
	v := vehicle("1", strPtr("31/02/lixo"), strPtr(day(3)))

	var alerts []alert.Alert
	require.NotPanics(t, func() {
		alerts = alert.ScanVehicles([]*entity.Vehicle{v}, 7, today)
	})
	require.Len(t, alerts, 1)
	assert.Equal(t, alert.KindInsurance, alerts[0].Kind)
}

func TestScanVehicles_InativaIgnorada(t *testing.T) {
	v := vehicle("1", strPtr(day(-1)), nil)
	v.Active = false
	assert.Empty(t, alert.ScanVehicles([]*entity.Vehicle{v}, 7, today))
}

func TestScanVehicles_DataVaziaIgnorada(t *testing.T) {
	assert.Empty(t, alert.ScanVehicles([]*entity.Vehicle{vehicle("1", strPtr(""), nil)}, 7, today))
}

func TestScanMaterials(t *testing.T) {
	cases := []struct {
		name    string
		current int64
		minimum int64
		alert   bool
		urgent  bool
	}{
		{"abaixo do mínimo", 2, 5, true, false},
		{"igual ao mínimo", 5, 5, true, false},
		{"acima do mínimo", 6, 5, false, false},
		{"esgotado", 0, 5, true, true},
		{"mínimo zero nunca alerta", 0, 0, false, false},
		{"mínimo zero com stock negativo", -3, 0, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alerts := alert.ScanMaterials([]*entity.Material{material("1", tc.current, tc.minimum)})
			if !tc.alert {
				assert.Empty(t, alerts)
				return
			}
			require.Len(t, alerts, 1)
			assert.Equal(t, alert.KindStock, alerts[0].Kind)
			assert.Equal(t, tc.urgent, alerts[0].Urgent())
		})
	}
}

func TestScan_ViaturasAntesDeMateriais(t *testing.T) {
	alerts := alert.Scan(
		[]*entity.Vehicle{vehicle("1", strPtr(day(0)), nil)},
		[]*entity.Material{material("m1", 1, 2)},
		7, today,
	)

	require.Len(t, alerts, 2)
	assert.True(t, alerts[0].IsVehicle())
	assert.Equal(t, alert.KindStock, alerts[1].Kind)
}

func TestScan_SemDadosDevolveListaVazia(t *testing.T) {
	alerts := alert.Scan(nil, nil, 7, today)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestParseDueDate(t *testing.T) {
	cases := map[string]string{
		"2026-03-17":                       "2026-03-17",
		"2026-03-17T23:30:00Z":             "2026-03-17",
		"2026-03-17T23:30:00+05:00":        "2026-03-17",
		"2026-03-17T00:15:00.123456-03:00": "2026-03-17",
		"2026-03-17T08:00":                 "2026-03-17",
		"2026-03-17 08:00:00":              "2026-03-17",
	}
	for in, want := range cases {
		got, ok := alert.ParseDueDate(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got.Format("2006-01-02"), in)
	}

	for _, bad := range []string{"", "lixo", "17/03/2026", "2026-02-30", "2026-03-17lixo", " 2026-03-17 ", "2026-03-17\n"} {
		_, ok := alert.ParseDueDate(bad)
		assert.False(t, ok, bad)
	}
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2026, time.October, 16, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, 0, alert.DaysBetween(from, from))
	assert.Equal(t, 1, alert.DaysBetween(from, time.Date(2026, time.October, 17, 0, 1, 0, 0, time.UTC)))
	assert.Equal(t, -119357, alert.DaysBetween(from, time.Date(1700, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 119357, alert.DaysBetween(time.Date(1700, time.January, 1, 0, 0, 0, 0, time.UTC), from))
}

func TestScanVehicles_DataSeculosNoPassado(t *testing.T) {
	// gralha no ano: 0224 em vez de 2024
	alerts := alert.ScanVehicles([]*entity.Vehicle{vehicle("1", strPtr("0224-05-01"), nil)}, 7, today)

	require.Len(t, alerts, 1)
	want := alert.DaysBetween(today, time.Date(224, time.May, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, want, alerts[0].DaysRemaining)
	assert.Less(t, alerts[0].DaysRemaining, -600000)
}

func TestFormatDate(t *testing.T) {
	d, ok := alert.ParseDueDate("2026-01-05")
	require.True(t, ok)
	assert.Equal(t, "05/01/2026", alert.FormatDate(d))
}
