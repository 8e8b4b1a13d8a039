// Package statement encodes transaction history as CSV for account
// statement exports.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andino-dev/andino/internal/model"
)

// Header is the CSV header for an exported statement.
const Header = "id,type,amount,date,description,status,from,to"

const (
	numFields  = 8
	colID      = 0
	colType    = 1
	colAmount  = 2
	colDate    = 3
	colDesc    = 4
	colStatus  = 5
	colFrom    = 6
	colTo      = 7
)

// Marshal converts a Transaction to a CSV row.
func Marshal(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = t.ID
	row[colType] = string(t.Type)
	row[colAmount] = t.Amount.StringFixed(2)
	row[colDate] = t.Date.Format(time.RFC3339)
	row[colDesc] = t.Description
	row[colStatus] = string(t.Status)
	row[colFrom] = t.From
	row[colTo] = t.To
	return row
}

// Unmarshal converts a CSV row to a Transaction.
func Unmarshal(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	date, err := time.Parse(time.RFC3339, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	return model.Transaction{
		ID:          record[colID],
		Type:        model.TransactionType(record[colType]),
		Amount:      amount,
		Date:        date,
		Description: record[colDesc],
		Status:      model.TransactionStatus(record[colStatus]),
		From:        record[colFrom],
		To:          record[colTo],
	}, nil
}

// Write writes a full statement (header plus rows) to w.
func Write(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		if err := cw.Write(Marshal(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Append writes rows without a header, for adding to an existing file.
func Append(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, t := range txns {
		if err := cw.Write(Marshal(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// Read reads a full statement (header expected) from r.
func Read(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		t, err := Unmarshal(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}
