package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renovo/internal/configurator"
	"renovo/internal/quotes"
)

func TestRenderQuote(t *testing.T) {
	q := &quotes.Quote{
		Breakdown: configurator.Breakdown{
			Products: []configurator.ProductLineTotal{{
				ProductLine: configurator.ProductLine{ProductID: 5, Name: "Ламинат", Price: 100, Quantity: 2},
				Total:       200,
			}},
			Services: []configurator.ServiceLineTotal{{
				ServiceLine: configurator.ServiceLine{ServiceID: 9, Name: "Укладка", Price: 50, Quantity: 1, Unit: "м²"},
				Total:       60,
			}},
			Coefficient: 1.2,
			Total:       260,
		},
		Number:   "ABCD2345",
		Name:     "Анна",
		IssuedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	data := struct {
		*quotes.Quote
		FrontendURL string
	}{q, "https://renovo.example"}

	subject, body, err := render(QuoteTemplate, data)
	require.NoError(t, err)

	assert.Equal(t, "Предварительный расчёт № ABCD2345", subject)
	assert.Contains(t, body, "Анна")
	assert.Contains(t, body, "Ламинат")
	assert.Contains(t, body, "260.00")
	assert.Contains(t, body, "01.03.2024")
	assert.Contains(t, body, "https://renovo.example")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, err := render("missing.tmpl", nil)
	assert.Error(t, err)
}

func TestNewSMTPClientValidatesConfig(t *testing.T) {
	_, err := NewSMTPClient(SMTPConfig{FromEmail: "noreply@renovo.example"})
	assert.Error(t, err)

	_, err = NewSMTPClient(SMTPConfig{Host: "smtp.example"})
	assert.Error(t, err)

	c, err := NewSMTPClient(SMTPConfig{Host: "smtp.example", FromEmail: "noreply@renovo.example"})
	require.NoError(t, err)
	assert.Equal(t, 587, c.cfg.Port)
}
