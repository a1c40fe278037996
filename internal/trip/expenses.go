package trip

import (
	"fmt"
	"math"
	"strings"

	"github.com/yutarok/tabinote/internal/domain"
)

// AddExpense prepends a new ledger entry so the newest expense shows
// first. The title is required and the amount must be a positive finite
// number; anything else is rejected and the ledger is returned unchanged.
func AddExpense(expenses []domain.Expense, e domain.Expense) ([]domain.Expense, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return expenses, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if e.Amount <= 0 || math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return expenses, fmt.Errorf("%w: amount must be a positive number", domain.ErrValidation)
	}
	if e.Currency != domain.CurrencyJPY && e.Currency != domain.CurrencyEUR {
		return expenses, fmt.Errorf("%w: unknown currency %q", domain.ErrValidation, e.Currency)
	}
	if e.Payer != domain.PayerMisaki && e.Payer != domain.PayerYutaro {
		return expenses, fmt.Errorf("%w: unknown payer %q", domain.ErrValidation, e.Payer)
	}

	e.ID = domain.NewID()
	next := make([]domain.Expense, 0, len(expenses)+1)
	next = append(next, e)
	return append(next, expenses...), nil
}

// DeleteExpense removes the entry with the given id; unknown ids are a
// no-op.
func DeleteExpense(expenses []domain.Expense, id string) []domain.Expense {
	next := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			next = append(next, e)
		}
	}
	return next
}

// BalanceSummary is the derived settlement view of the ledger. All
// amounts are in JPY after converting EUR entries at the supplied rate.
type BalanceSummary struct {
	MisakiTotal float64 `json:"misakiTotal"`
	YutaroTotal float64 `json:"yutaroTotal"`
	GrandTotal  float64 `json:"grandTotal"`
	PerPerson   float64 `json:"perPerson"`
	// Balance is Misaki's net position: positive means Misaki is owed
	// the amount, negative means Misaki owes it.
	Balance    float64      `json:"balance"`
	Receiver   domain.Payer `json:"receiver"`
	Receivable float64      `json:"receivable"`
}

// Balance computes the two-payer settlement. Exactly two payers are
// supported; the model does not generalize to N participants.
func Balance(expenses []domain.Expense, eurRate float64) BalanceSummary {
	var misaki, yutaro float64
	for _, e := range expenses {
		amount := e.Amount
		if e.Currency == domain.CurrencyEUR {
			amount *= eurRate
		}
		if e.Payer == domain.PayerMisaki {
			misaki += amount
		} else {
			yutaro += amount
		}
	}

	total := misaki + yutaro
	balance := misaki - total/2

	receiver := domain.PayerMisaki
	if balance < 0 {
		receiver = domain.PayerYutaro
	}

	return BalanceSummary{
		MisakiTotal: misaki,
		YutaroTotal: yutaro,
		GrandTotal:  total,
		PerPerson:   total / 2,
		Balance:     balance,
		Receiver:    receiver,
		Receivable:  math.Abs(balance),
	}
}
