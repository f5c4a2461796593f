package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const pdfDateLayout = "2006-01-02"

func renderInvoicePDF(inv InvoiceDetailResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("Invoice %d", inv.ID), true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Invoice #%d", inv.ID))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, tr(inv.Name))
	pdf.Ln(8)
	if inv.Description != nil && *inv.Description != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, tr(*inv.Description), "", "L", false)
	}
	pdf.Ln(6)

	status := "Unpaid"
	paidOn := "-"
	if inv.Paid {
		status = "Paid"
	}
	if inv.PaidDate != nil {
		paidOn = inv.PaidDate.Format(pdfDateLayout)
	}

	rows := [][2]string{
		{"Issued", inv.AddDate.Format(pdfDateLayout)},
		{"Status", status},
		{"Paid on", paidOn},
		{"Amount", fmt.Sprintf("%.2f", inv.Amt)},
	}

	pdf.SetFont("Arial", "", 11)
	for _, row := range rows {
		pdf.CellFormat(40, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, row[1], "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
