package finance

import (
	"math"
	"sort"
	"time"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// rankCategories returns totals sorted by amount desc, then by name.
func rankCategories(totals map[string]float64) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for c, a := range totals {
		out = append(out, CategoryTotal{Category: c, Amount: round2(a)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func highest(ranked []CategoryTotal) string {
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0].Category
}

// summarizeMonth computes the month summary. daysElapsed must be ≥ 1.
func summarizeMonth(expenses []domain.RegularExpense, budget float64, daysElapsed int) MonthSummary {
	var total float64
	byCategory := make(map[string]float64)
	for _, e := range expenses {
		total += e.Amount
		byCategory[e.Category] += e.Amount
	}

	ranked := rankCategories(byCategory)
	return MonthSummary{
		Expenses:        expenses,
		Total:           round2(total),
		DailyAverage:    round2(total / float64(daysElapsed)),
		Categories:      ranked,
		HighestCategory: highest(ranked),
		MonthlyBudget:   budget,
		RemainingBudget: round2(budget - total),
	}
}

// summarizeFixed annotates bills relative to today. A bill is due soon when it
// is unpaid and due within dueSoonDays.
func summarizeFixed(bills []domain.FixedExpense, today time.Time, dueSoonDays int) FixedSummary {
	sum := FixedSummary{Items: make([]FixedItem, 0, len(bills))}
	byCategory := make(map[string]float64)

	var monthlyTotal, average float64
	for _, b := range bills {
		days := domain.DaysBetween(today, b.DueDate)
		sum.Items = append(sum.Items, FixedItem{
			Expense:      b,
			DaysUntilDue: days,
			IsOverdue:    days < 0 && !b.IsPaid,
			IsDueSoon:    days >= 0 && days <= dueSoonDays && !b.IsPaid,
		})

		if b.Frequency == domain.FrequencyMonthly {
			monthlyTotal += b.Amount
		}
		average += b.MonthlyAmount()
		byCategory[b.Category] += b.MonthlyAmount()

		if !b.IsPaid && days >= 0 && (sum.NextDue == nil || b.DueDate.Before(*sum.NextDue)) {
			due := b.DueDate
			sum.NextDue = &due
		}
	}

	sum.MonthlyTotal = round2(monthlyTotal)
	sum.MonthlyAverage = round2(average)
	sum.HighestCategory = highest(rankCategories(byCategory))
	return sum
}

// splitPaid totals paid and unpaid bill amounts.
func splitPaid(bills []domain.FixedExpense) (paid, pending float64) {
	for _, b := range bills {
		if b.IsPaid {
			paid += b.Amount
		} else {
			pending += b.Amount
		}
	}
	return round2(paid), round2(pending)
}
