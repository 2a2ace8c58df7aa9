package report

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

// RenderPDF lays the report out on A4: totals first, then one table per
// non-empty side and the period's transactions.
func RenderPDF(r *Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Monthly Financial Report")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Period: "+r.period.Title())
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{60, 60, 62}
	pdf.CellFormat(sumW[0], 10, "Income ("+currency+")", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Expense ("+currency+")", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Balance ("+currency+")", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, FormatAmount(r.TotalIncome()), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, FormatAmount(r.TotalExpense()), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, FormatAmount(r.Balance()), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	writeShareTable(pdf, "Expenses by category", r.Breakdown(transaction.KindExpense))
	writeShareTable(pdf, "Income by category", r.Breakdown(transaction.KindIncome))
	writeTransactionTable(pdf, r.Transactions())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("building pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func writeShareTable(pdf *gofpdf.Fpdf, title string, shares []Share) {
	if len(shares) == 0 {
		return
	}

	colW := []float64{90, 62, 30}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.CellFormat(colW[0], 8, "CATEGORY", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW[1], 8, "AMOUNT", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colW[2], 8, "SHARE", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)

	for _, s := range shares {
		pdf.CellFormat(colW[0], 8, s.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 8, FormatAmount(s.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[2], 8, s.Percent.StringFixed(1)+"%", "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
}

func writeTransactionTable(pdf *gofpdf.Fpdf, txs []transaction.Transaction) {
	if len(txs) == 0 {
		return
	}

	colW := []float64{24, 24, 50, 52, 32}
	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(colW[0], 8, "DATE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, "TYPE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[2], 8, "CATEGORY", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[3], 8, "DESCRIPTION", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[4], 8, "AMOUNT", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Transactions")
	pdf.Ln(8)
	header()

	for _, tx := range txs {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			header()
		}

		amount := FormatAmount(tx.Amount)
		if tx.IsExpense() {
			amount = "-" + amount
		}

		pdf.CellFormat(colW[0], 8, tx.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, string(tx.Kind), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[2], 8, truncate(tx.Category, 28), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[3], 8, truncate(tx.Description, 30), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[4], 8, amount, "1", 1, "R", false, 0, "")
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "."
}
