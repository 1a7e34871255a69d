package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONComComponente(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "debug", Output: &buf})

	log.Component("alerts").Info().Int("total", 3).Msg("scan concluído")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "alerts", line["component"])
	assert.Equal(t, "scan concluído", line["message"])
	assert.EqualValues(t, 3, line["total"])
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("ignorado")
	assert.Empty(t, buf.String())

	log.Warn().Msg("visível")
	assert.Contains(t, buf.String(), "visível")
}

func TestParseLevel_Desconhecido(t *testing.T) {
	assert.Equal(t, "info", parseLevel("verbose").String())
	assert.Equal(t, "info", parseLevel("").String())
}
