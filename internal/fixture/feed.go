// Package fixture serves generated transaction feeds for demos and tests.
package fixture

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Veraticus/finance-dashboard/internal/model"
	"github.com/google/uuid"
)

var merchants = []struct {
	title    string
	category string
	kind     model.TransactionType
	minAmt   float64
	maxAmt   float64
}{
	{"Salary", "Job", model.TypeIncome, 4000, 9000},
	{"Freelance project", "Job", model.TypeIncome, 500, 3000},
	{"Dividends", "Investments", model.TypeIncome, 50, 400},
	{"Rent", "Home", model.TypeOutcome, 1200, 2500},
	{"Supermarket", "Groceries", model.TypeOutcome, 80, 600},
	{"Electricity bill", "Utilities", model.TypeOutcome, 90, 300},
	{"Internet", "Utilities", model.TypeOutcome, 99.9, 99.9},
	{"Restaurant", "Food", model.TypeOutcome, 40, 250},
	{"Gas station", "Transport", model.TypeOutcome, 100, 350},
	{"Pharmacy", "Health", model.TypeOutcome, 15, 200},
	{"Streaming", "Entertainment", model.TypeOutcome, 39.9, 39.9},
	{"Gym", "Health", model.TypeOutcome, 110, 110},
}

// Sample returns a single-salary feed, handy for quick demos.
func Sample() model.Feed {
	return model.Feed{
		Balance: model.Balance{Income: 5000, Outcome: 2000, Total: 3000},
		Transactions: []model.Transaction{
			{
				ID:        "1",
				Title:     "Salary",
				Value:     5000,
				Type:      model.TypeIncome,
				Category:  model.Category{Title: "Job"},
				CreatedAt: model.Timestamp{Time: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)},
			},
		},
	}
}

// Generate builds a feed of count transactions ending at until, newest first.
// The same seed always yields the same feed. The balance is summed from the
// generated transactions, the way a backend would.
func Generate(count int, seed int64, until time.Time) model.Feed {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // fixture data

	transactions := make([]model.Transaction, 0, count)
	var balance model.Balance

	for i := 0; i < count; i++ {
		m := merchants[rng.Intn(len(merchants))]
		value := roundToCents(m.minAmt + rng.Float64()*(m.maxAmt-m.minAmt))

		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%d-%d", seed, i)))
		}

		transactions = append(transactions, model.Transaction{
			ID:        id.String(),
			Title:     m.title,
			Value:     value,
			Type:      m.kind,
			Category:  model.Category{Title: m.category},
			CreatedAt: model.Timestamp{Time: until.AddDate(0, 0, -(i / 2)).UTC()},
		})

		switch m.kind {
		case model.TypeIncome:
			balance.Income += value
		case model.TypeOutcome:
			balance.Outcome += value
		}
	}

	balance.Income = roundToCents(balance.Income)
	balance.Outcome = roundToCents(balance.Outcome)
	balance.Total = roundToCents(balance.Income - balance.Outcome)

	return model.Feed{Balance: balance, Transactions: transactions}
}

func roundToCents(f float64) float64 {
	return math.Round(f*100) / 100
}
