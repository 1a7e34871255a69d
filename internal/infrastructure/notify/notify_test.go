package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Armazem-api/internal/application/dto"
	"github.com/jhoicas/Armazem-api/pkg/logger"
)

func intPtr(i int) *int { return &i }

func sampleNotices() []dto.AlertNotice {
	current, minimum := decimal.Zero, decimal.NewFromInt(10)
	return []dto.AlertNotice{
		{Kind: "vistoria", Plate: "AA-11-BB", Brand: "Renault", Model: "Master", ExpirationDate: "20/03/2026", DaysRemaining: intPtr(10)},
		{Kind: "seguro", Plate: "CC-22-DD", Brand: "Ford", Model: "Transit", ExpirationDate: "10/03/2026", DaysRemaining: intPtr(0)},
		{Kind: "stock", MaterialCode: "CIM", Description: "Cimento <Portland>", Unit: "saco", StockCurrent: &current, StockMinimum: &minimum, Urgent: true},
	}
}

func TestRenderAlertEmail(t *testing.T) {
	body, err := RenderAlertEmail(sampleNotices())
	require.NoError(t, err)

	assert.Contains(t, body, "AA-11-BB")
	assert.Contains(t, body, "Renault Master")
	assert.Contains(t, body, "Expira em 10 dias")
	assert.Contains(t, body, "EXPIRADO")
	assert.Contains(t, body, colorExpired)
	assert.Contains(t, body, "Vistoria")
	assert.Contains(t, body, "Stock baixo")
	// conteúdo escapado
	assert.Contains(t, body, "Cimento &lt;Portland&gt;")
	assert.Contains(t, body, "Este email foi enviado automaticamente")
}

func TestRenderAlertEmail_SoViaturasSemTabelaDeStock(t *testing.T) {
	body, err := RenderAlertEmail(sampleNotices()[:1])
	require.NoError(t, err)
	assert.False(t, strings.Contains(body, "Stock baixo"))
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "⚠️ Alertas de Viaturas - 3 alerta(s)", Subject(3))
}

type fakeSender struct {
	msgs []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.msgs = append(f.msgs, m...)
	return f.err
}

func TestSMTPDispatcher(t *testing.T) {
	fs := &fakeSender{}
	d := &SMTPDispatcher{dialer: fs, from: "alertas@empresa.pt", recipient: "gestor@empresa.pt"}

	res, err := d.Dispatch(context.Background(), sampleNotices())
	require.NoError(t, err)
	assert.True(t, res.Sent)
	require.Len(t, fs.msgs, 1)
	assert.Equal(t, []string{"gestor@empresa.pt"}, fs.msgs[0].GetHeader("To"))
	assert.Equal(t, []string{Subject(3)}, fs.msgs[0].GetHeader("Subject"))
}

func TestSMTPDispatcher_Falha(t *testing.T) {
	d := &SMTPDispatcher{dialer: &fakeSender{err: errors.New("connection refused")}, from: "a@b.pt", recipient: "c@d.pt"}
	res, err := d.Dispatch(context.Background(), sampleNotices())
	assert.Error(t, err)
	assert.False(t, res.Sent)
}

func TestNoopDispatcher(t *testing.T) {
	res, err := NewNoopDispatcher(logger.Nop()).Dispatch(context.Background(), sampleNotices())
	require.NoError(t, err)
	assert.False(t, res.Sent)
}
