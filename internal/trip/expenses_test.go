package trip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yutarok/tabinote/internal/domain"
)

func TestAddExpensePrepends(t *testing.T) {
	expenses := domain.SeedExpenses()

	next, err := AddExpense(expenses, domain.Expense{
		Title:    "トラム1日券",
		Amount:   9,
		Currency: domain.CurrencyEUR,
		Payer:    domain.PayerYutaro,
		Method:   domain.MethodCashless,
		Category: domain.ExpenseTransport,
		Date:     "2026-06-20",
	})
	require.NoError(t, err)
	require.Len(t, next, 2)
	assert.Equal(t, "トラム1日券", next[0].Title)
	assert.Equal(t, "航空券", next[1].Title)
	assert.NotEmpty(t, next[0].ID)
}

func TestAddExpenseValidation(t *testing.T) {
	expenses := domain.SeedExpenses()

	tests := []struct {
		name    string
		expense domain.Expense
	}{
		{"empty title", domain.Expense{Title: "", Amount: 100, Currency: domain.CurrencyJPY, Payer: domain.PayerMisaki}},
		{"zero amount", domain.Expense{Title: "x", Amount: 0, Currency: domain.CurrencyJPY, Payer: domain.PayerMisaki}},
		{"negative amount", domain.Expense{Title: "x", Amount: -5, Currency: domain.CurrencyJPY, Payer: domain.PayerMisaki}},
		{"NaN amount", domain.Expense{Title: "x", Amount: math.NaN(), Currency: domain.CurrencyJPY, Payer: domain.PayerMisaki}},
		{"unknown currency", domain.Expense{Title: "x", Amount: 100, Currency: "USD", Payer: domain.PayerMisaki}},
		{"unknown payer", domain.Expense{Title: "x", Amount: 100, Currency: domain.CurrencyJPY, Payer: "Alice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := AddExpense(expenses, tt.expense)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, expenses, next)
		})
	}
}

func TestDeleteExpense(t *testing.T) {
	expenses := domain.SeedExpenses()

	next := DeleteExpense(expenses, "e1")
	assert.Empty(t, next)

	same := DeleteExpense(expenses, "nope")
	assert.Equal(t, expenses, same)
}

func TestBalanceReferenceVector(t *testing.T) {
	// 2000 JPY by Misaki plus 10 EUR by Yutaro at 1€ = ¥165.
	expenses := []domain.Expense{
		{ID: "a", Title: "ランチ", Amount: 2000, Currency: domain.CurrencyJPY, Payer: domain.PayerMisaki},
		{ID: "b", Title: "コーヒー", Amount: 10, Currency: domain.CurrencyEUR, Payer: domain.PayerYutaro},
	}

	s := Balance(expenses, 165)
	assert.Equal(t, 2000.0, s.MisakiTotal)
	assert.Equal(t, 1650.0, s.YutaroTotal)
	assert.Equal(t, 3650.0, s.GrandTotal)
	assert.Equal(t, 1825.0, s.PerPerson)
	assert.Equal(t, 175.0, s.Balance)
	assert.Equal(t, domain.PayerMisaki, s.Receiver)
	assert.Equal(t, 175.0, s.Receivable)

	// Receivable must equal |MisakiTotal − YutaroTotal| / 2.
	assert.Equal(t, math.Abs(s.MisakiTotal-s.YutaroTotal)/2, s.Receivable)
}

func TestBalanceYutaroOwed(t *testing.T) {
	expenses := []domain.Expense{
		{ID: "a", Title: "ホテル", Amount: 200, Currency: domain.CurrencyEUR, Payer: domain.PayerYutaro},
	}

	s := Balance(expenses, 165)
	assert.Equal(t, 0.0, s.MisakiTotal)
	assert.Equal(t, 33000.0, s.YutaroTotal)
	assert.Equal(t, -16500.0, s.Balance)
	assert.Equal(t, domain.PayerYutaro, s.Receiver)
	assert.Equal(t, 16500.0, s.Receivable)
}

func TestBalanceEmptyLedger(t *testing.T) {
	s := Balance(nil, 165)
	assert.Zero(t, s.GrandTotal)
	assert.Zero(t, s.Balance)
	assert.Zero(t, s.Receivable)
}
