package category

import (
	"slices"
	"strings"
)

// Side tells whether a category groups income or expenses.
type Side string

const (
	SideIncome  Side = "income"
	SideExpense Side = "expense"
)

// Category is an entry of the fixed catalog.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Side Side   `json:"side"`
}

var (
	Salary        = Category{ID: "SALARY", Name: "Salary", Side: SideIncome}
	Bonus         = Category{ID: "BONUS", Name: "Bonus", Side: SideIncome}
	Investment    = Category{ID: "INVESTMENT", Name: "Investment", Side: SideIncome}
	OtherIncome   = Category{ID: "OTHER_INCOME", Name: "Other Income", Side: SideIncome}
	Food          = Category{ID: "FOOD", Name: "Food", Side: SideExpense}
	Transport     = Category{ID: "TRANSPORTATION", Name: "Transportation", Side: SideExpense}
	Entertainment = Category{ID: "ENTERTAINMENT", Name: "Entertainment", Side: SideExpense}
	Shopping      = Category{ID: "SHOPPING", Name: "Shopping", Side: SideExpense}
	Bills         = Category{ID: "BILLS", Name: "Bills", Side: SideExpense}
	Health        = Category{ID: "HEALTH", Name: "Health", Side: SideExpense}
	Education     = Category{ID: "EDUCATION", Name: "Education", Side: SideExpense}
	OtherExpense  = Category{ID: "OTHER_EXPENSE", Name: "Other Expense", Side: SideExpense}
)

// catalog order matters: Lookup returns the first match.
var catalog = []Category{
	Salary, Bonus, Investment, OtherIncome,
	Food, Transport, Entertainment, Shopping, Bills, Health, Education, OtherExpense,
}

// All returns the whole catalog in lookup order.
func All() []Category {
	return slices.Clone(catalog)
}

// Income returns the income-side categories.
func Income() []Category {
	return bySide(SideIncome)
}

// Expenses returns the expense-side categories.
func Expenses() []Category {
	return bySide(SideExpense)
}

func bySide(side Side) []Category {
	var out []Category

	for _, c := range catalog {
		if c.Side == side {
			out = append(out, c)
		}
	}

	return out
}

// Misc returns the miscellaneous category of the given side.
func Misc(preferIncome bool) Category {
	if preferIncome {
		return OtherIncome
	}

	return OtherExpense
}

// Lookup matches input case-insensitively against catalog identifiers and display names.
func Lookup(input string) (Category, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Category{}, false
	}

	for _, c := range catalog {
		if strings.EqualFold(c.ID, s) || strings.EqualFold(c.Name, s) {
			return c, true
		}
	}

	return Category{}, false
}

// Resolve never fails: unknown or blank input falls back to the miscellaneous
// category of the preferred side.
func Resolve(input string, preferIncome bool) Category {
	if c, ok := Lookup(input); ok {
		return c
	}

	return Misc(preferIncome)
}

// Normalize returns the label stored on a transaction. Catalog entries are
// canonicalised to their display name, blank input becomes the side's
// miscellaneous name and any other text is kept as typed (trimmed).
func Normalize(input string, preferIncome bool) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return Misc(preferIncome).Name
	}

	if c, ok := Lookup(s); ok {
		return c.Name
	}

	return s
}
