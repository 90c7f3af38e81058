package billing

import (
	"github.com/shopspring/decimal"
)

// Category is a payment allocation category. Each category is allocated
// independently across a unit's bills.
type Category string

const (
	CategoryElectric          Category = "ELECTRIC"
	CategoryWater             Category = "WATER"
	CategoryDues              Category = "DUES"    // association dues and parking
	CategoryPenalty           Category = "PENALTY" // penalty, past dues and other charges
	CategorySpecialAssessment Category = "SPECIAL_ASSESSMENT"
)

// Categories lists every category in allocation order.
var Categories = []Category{
	CategoryElectric,
	CategoryWater,
	CategoryDues,
	CategoryPenalty,
	CategorySpecialAssessment,
}

// IsUtility reports whether overflow in this category belongs to the utilities bucket.
func (c Category) IsUtility() bool {
	return c == CategoryElectric || c == CategoryWater
}

// CategoryAmounts is a fixed set of amounts, one per allocation category.
type CategoryAmounts struct {
	Electric          decimal.Decimal `json:"electric"`
	Water             decimal.Decimal `json:"water"`
	Dues              decimal.Decimal `json:"dues"`
	Penalty           decimal.Decimal `json:"penalty"`
	SpecialAssessment decimal.Decimal `json:"special_assessment"`
}

// Get returns the amount for a category
func (a CategoryAmounts) Get(c Category) decimal.Decimal {
	switch c {
	case CategoryElectric:
		return a.Electric
	case CategoryWater:
		return a.Water
	case CategoryDues:
		return a.Dues
	case CategoryPenalty:
		return a.Penalty
	case CategorySpecialAssessment:
		return a.SpecialAssessment
	}
	return decimal.Zero
}

// Set replaces the amount for a category
func (a *CategoryAmounts) Set(c Category, v decimal.Decimal) {
	switch c {
	case CategoryElectric:
		a.Electric = v
	case CategoryWater:
		a.Water = v
	case CategoryDues:
		a.Dues = v
	case CategoryPenalty:
		a.Penalty = v
	case CategorySpecialAssessment:
		a.SpecialAssessment = v
	}
}

// Add returns a + b per category
func (a CategoryAmounts) Add(b CategoryAmounts) CategoryAmounts {
	var out CategoryAmounts
	for _, c := range Categories {
		out.Set(c, a.Get(c).Add(b.Get(c)))
	}
	return out
}

// Sub returns a - b per category
func (a CategoryAmounts) Sub(b CategoryAmounts) CategoryAmounts {
	var out CategoryAmounts
	for _, c := range Categories {
		out.Set(c, a.Get(c).Sub(b.Get(c)))
	}
	return out
}

// Total sums every category
func (a CategoryAmounts) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range Categories {
		total = total.Add(a.Get(c))
	}
	return total
}

// IsZero reports whether every category is zero
func (a CategoryAmounts) IsZero() bool {
	for _, c := range Categories {
		if !a.Get(c).IsZero() {
			return false
		}
	}
	return true
}

// HasNegative reports whether any category is below zero
func (a CategoryAmounts) HasNegative() bool {
	for _, c := range Categories {
		if a.Get(c).IsNegative() {
			return true
		}
	}
	return false
}
