package ledgercsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/jpcarvalho/lexledger/internal/encoding"
	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

// Parser reads ledger CSVs in the layout the export module emits:
// Item Name, Category, Amount, Taxable, Description. Summary rows
// (Subtotal, Tax, Total) and blank rows are skipped, so a previously
// exported file imports back cleanly.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]lineitem.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	var params []lineitem.CreateParams

	for i, row := range rows {
		rowNum := i + 1

		if isHeaderRow(row) || isSummaryRow(row) || isBlankRow(row) {
			continue
		}

		if len(row) < 3 {
			return nil, fmt.Errorf("row %d: expected at least name, category and amount", rowNum)
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			return nil, fmt.Errorf("row %d: missing item name", rowNum)
		}

		amount, err := parseAmount(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		item := lineitem.CreateParams{
			Name:         name,
			Category:     lineitem.ParseCategory(cellValue(row, 1)),
			Amount:       amount,
			Taxable:      parseTaxable(cellValue(row, 3)),
			Description:  cellValue(row, 4),
			DisplayOrder: len(params) + 1,
		}

		params = append(params, item)
	}

	return params, nil
}

func isHeaderRow(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "Item Name")
}

// isSummaryRow matches the totals block of an exported file: a label in
// the first column, no category, and an amount in the third.
func isSummaryRow(row []string) bool {
	if len(row) < 3 || strings.TrimSpace(row[1]) != "" {
		return false
	}

	label := strings.ToLower(strings.TrimSpace(row[0]))

	return label == "subtotal" || label == "total" || strings.HasPrefix(label, "tax")
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func parseTaxable(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}

func cellValue(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
