package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

const (
	currency  = "Rp"
	ruleHeavy = "========================================"
	ruleLight = "----------------------------------------"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders d with two decimals and thousands separators, e.g. "1,300.00".
// Only the integer part goes through the printer, so the cents stay exact.
func FormatAmount(d decimal.Decimal) string {
	abs := d.Round(2).Abs()
	fixed := abs.StringFixed(2)

	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}

	return sign + printer.Sprintf("%d", abs.IntPart()) + fixed[len(fixed)-3:]
}

// Summary renders the report as plain text. A side with no transactions has
// its category section left out.
func (r *Report) Summary() string {
	var sb strings.Builder

	sb.WriteString("\n" + ruleHeavy + "\n")
	sb.WriteString("       MONTHLY FINANCIAL REPORT\n")
	sb.WriteString(ruleHeavy + "\n")
	fmt.Fprintf(&sb, "Period: %s\n", r.period.Title())
	sb.WriteString(ruleLight + "\n")
	fmt.Fprintf(&sb, "Total income : %s %15s\n", currency, FormatAmount(r.TotalIncome()))
	fmt.Fprintf(&sb, "Total expense: %s %15s\n", currency, FormatAmount(r.TotalExpense()))
	sb.WriteString(ruleLight + "\n")
	fmt.Fprintf(&sb, "BALANCE      : %s %15s\n", currency, FormatAmount(r.Balance()))
	sb.WriteString(ruleHeavy + "\n")

	r.writeBreakdown(&sb, "Expenses by category:", transaction.KindExpense)
	r.writeBreakdown(&sb, "Income by category:", transaction.KindIncome)

	sb.WriteString(ruleHeavy + "\n")

	return sb.String()
}

func (r *Report) writeBreakdown(sb *strings.Builder, title string, kind transaction.Kind) {
	shares := r.Breakdown(kind)
	if len(shares) == 0 {
		return
	}

	sb.WriteString("\n" + title + "\n")
	sb.WriteString(ruleLight + "\n")

	for _, s := range shares {
		fmt.Fprintf(sb, "%-20s: %s %12s (%s%%)\n", s.Category, currency, FormatAmount(s.Amount), s.Percent.StringFixed(1))
	}
}
