// Package sheets appends accepted submissions to the recruiting team's
// Google Sheet. The mirror is write-only and append-only: rows are never
// read back, updated, or deleted, and nothing links them to the stored
// record beyond the shared values.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jesap-it/recruiting-backend/internal/auth"
	"github.com/jesap-it/recruiting-backend/internal/schema"
	"github.com/jesap-it/recruiting-backend/internal/validation"
)

// SheetsMirror appends rows to one fixed spreadsheet range using a
// service account.
type SheetsMirror struct {
	service       *sheets.Service
	spreadsheetID string
	appendRange   string
}

func NewSheetsMirror(ctx context.Context, credentialsPath, spreadsheetID, appendRange string) (*SheetsMirror, error) {
	client, err := auth.ServiceAccountClient(ctx, credentialsPath, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, err
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %w", err)
	}

	return &SheetsMirror{
		service:       service,
		spreadsheetID: spreadsheetID,
		appendRange:   appendRange,
	}, nil
}

// Append adds one row after the last row of the configured range.
func (m *SheetsMirror) Append(ctx context.Context, row []interface{}) error {
	values := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := m.service.Spreadsheets.Values.
		Append(m.spreadsheetID, m.appendRange, values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheet append failed: %w", err)
	}
	return nil
}

// Row builds the positional values for one candidate: the 19 form values
// in schema catalogue order, which is also the sheet's column order.
func Row(v *validation.ValidatedCandidate) []interface{} {
	names := schema.Names()
	row := make([]interface{}, len(names))
	for i, name := range names {
		row[i] = v.Value(name)
	}
	return row
}
