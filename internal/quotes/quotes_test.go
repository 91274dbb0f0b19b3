package quotes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renovo/internal/configurator"
)

func TestIssuer_NumbersAreUniqueAndDecodable(t *testing.T) {
	iss, err := NewIssuer("test-salt")
	require.NoError(t, err)
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	iss.now = func() time.Time { return at }

	b := configurator.Breakdown{Total: 260, Coefficient: 1.2}
	q1, err := iss.Issue(" Анна ", "anna@example.com", configurator.MarketSecondary, b)
	require.NoError(t, err)
	q2, err := iss.Issue("Анна", "anna@example.com", configurator.MarketSecondary, b)
	require.NoError(t, err)

	assert.NotEqual(t, q1.Number, q2.Number)
	assert.GreaterOrEqual(t, len(q1.Number), numberMinLength)
	assert.Equal(t, "Анна", q1.Name)
	assert.Equal(t, 260.0, q1.Total)
	assert.Equal(t, at, q1.IssuedAt)

	got, err := iss.IssuedAt(q1.Number)
	require.NoError(t, err)
	assert.Equal(t, at, got)
}

func TestIssuer_RejectsForeignNumbers(t *testing.T) {
	a, err := NewIssuer("salt-a")
	require.NoError(t, err)
	b, err := NewIssuer("salt-b")
	require.NoError(t, err)

	q, err := a.Issue("x", "x@example.com", configurator.MarketNone, configurator.Breakdown{})
	require.NoError(t, err)

	_, err = b.IssuedAt(q.Number)
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = a.IssuedAt("")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}
