package bank

type amountMode int

const (
	// one signed column, e.g. "Montante" = "-10,00"
	amountSingle amountMode = iota
	// separate debit and credit columns
	amountSplit
)

// Profile describes the header layout of one statement format.
type Profile struct {
	Name       string
	DateCol    string
	DescCol    string
	AmountMode amountMode
	AmountCol  string
	DebitCol   string
	CreditCol  string
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles are tried in order; split layouts come first since their date and
// description columns overlap with the single-amount ones.
var profiles = []Profile{
	{
		Name:       "card",
		DateCol:    "Data",
		DescCol:    "Descrição",
		AmountMode: amountSplit,
		DebitCol:   "Débito",
		CreditCol:  "Crédito",
	},
	{
		Name:       "debit-credit",
		DateCol:    "Date",
		DescCol:    "Description",
		AmountMode: amountSplit,
		DebitCol:   "Debit",
		CreditCol:  "Credit",
	},
	{
		Name:       "statement",
		DateCol:    "Data mov.",
		DescCol:    "Descrição",
		AmountMode: amountSingle,
		AmountCol:  "Movimento",
	},
	{
		Name:       "account",
		DateCol:    "Data mov.",
		DescCol:    "Descrição",
		AmountMode: amountSingle,
		AmountCol:  "Montante",
	},
	{
		Name:       "generic",
		DateCol:    "Date",
		DescCol:    "Description",
		AmountMode: amountSingle,
		AmountCol:  "Amount",
	},
}
