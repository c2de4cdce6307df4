package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllyParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/ally_savings.csv")
	require.NoError(t, err)

	p := &AllyParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Len(t, txns, 4)

	// Oldest first after reversal.
	assert.Equal(t, "2024-01-02", txns[0].Date)
	assert.Equal(t, "COFFEE SHOP", txns[0].Description)
	assert.Equal(t, "2024-01-05", txns[3].Date)
	assert.Equal(t, "GITHUB PRO SUBSCRIPTION", txns[3].Description)
}

func TestAllyParser_VerbatimFields(t *testing.T) {
	data, err := os.ReadFile("../../testdata/ally_savings.csv")
	require.NoError(t, err)

	p := &AllyParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	// No coercion: amounts, dates and times stay raw strings.
	acme := txns[2]
	assert.Equal(t, "2024-01-04", acme.Date)
	assert.Equal(t, "09:10:11", acme.Time)
	assert.Equal(t, "3500.00", acme.Amount)
	assert.Equal(t, "Deposit", acme.Type)
	assert.Equal(t, "ACME CONSULTING INVOICE 1042", acme.Description)
}

func TestAllyParser_HeaderOnly(t *testing.T) {
	p := &AllyParser{}
	txns, err := p.Parse(strings.NewReader("Date,Time,Amount,Type,Description\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestAllyParser_HeaderDiscardedUnconditionally(t *testing.T) {
	// Even a header-less file loses its first row.
	csv := "2024-01-03,12:00:00,-50.00,Withdrawal,ATM\n2024-01-02,10:00:00,-12.34,Withdrawal,COFFEE SHOP\n"
	p := &AllyParser{}
	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "COFFEE SHOP", txns[0].Description)
}

func TestAllyParser_WrongFieldCount(t *testing.T) {
	csv := "Date,Time,Amount,Type,Description\n2024-01-02,10:00:00,-12.34,Withdrawal\n"
	p := &AllyParser{}
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestAllyParser_Format(t *testing.T) {
	p := &AllyParser{}
	assert.Equal(t, "ally", p.Format())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&AllyParser{})
	p := r.Get("ally")
	require.NotNil(t, p)
	assert.Equal(t, "ally", p.Format())
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&AllyParser{})
	assert.NotNil(t, r.Get("Ally"))
	assert.NotNil(t, r.Get("ALLY"))
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("ally"))
}
