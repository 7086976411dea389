package sheet

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jobsift/jobsift/internal/core"
)

const (
	headerRange = "A1:I1"
	appendRange = "A:I"
)

// trackerHeaders is the header row of a tracker spreadsheet, one column
// per field the tracker keeps for an application.
var trackerHeaders = []string{
	"Company",
	"Position",
	"Date Applied",
	"Status",
	"Application Method",
	"Contact Person",
	"Notes",
	"Interview Date",
	"Follow-up Date",
}

// Writer persists job email records to a Google Sheets tracker.
type Writer struct {
	svc    *sheets.Service
	logger *zap.Logger
}

// NewWriter creates a new Sheets writer over an authenticated HTTP client
func NewWriter(httpClient *http.Client, logger *zap.Logger) (*Writer, error) {
	svc, err := sheets.NewService(context.Background(), option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &Writer{
		svc:    svc,
		logger: logger,
	}, nil
}

// CreateTracker creates a new tracker spreadsheet and returns its id and URL
func (w *Writer) CreateTracker(ctx context.Context, title string) (string, string, error) {
	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: title,
		},
	}

	resp, err := w.svc.Spreadsheets.Create(spreadsheet).
		Fields("spreadsheetId,spreadsheetUrl").
		Context(ctx).
		Do()
	if err != nil {
		return "", "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	w.logger.Info("Created tracker spreadsheet",
		zap.String("title", title),
		zap.String("spreadsheet_id", resp.SpreadsheetId),
		zap.String("url", resp.SpreadsheetUrl))

	return resp.SpreadsheetId, resp.SpreadsheetUrl, nil
}

// EnsureHeaders writes the bolded header row unless the sheet already has one
func (w *Writer) EnsureHeaders(ctx context.Context, trackerID string) error {
	existing, err := w.svc.Spreadsheets.Values.Get(trackerID, headerRange).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}
	if len(existing.Values) > 0 {
		return nil
	}

	row := make([]interface{}, len(trackerHeaders))
	for i, h := range trackerHeaders {
		row[i] = h
	}
	body := &sheets.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err = w.svc.Spreadsheets.Values.Update(trackerID, headerRange, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	// Bold the header row
	format := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:          0,
						StartRowIndex:    0,
						EndRowIndex:      1,
						StartColumnIndex: 0,
						EndColumnIndex:   int64(len(trackerHeaders)),
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							TextFormat: &sheets.TextFormat{
								Bold: true,
							},
						},
					},
					Fields: "userEnteredFormat.textFormat.bold",
				},
			},
		},
	}

	if _, err := w.svc.Spreadsheets.BatchUpdate(trackerID, format).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to format header row: %w", err)
	}

	w.logger.Debug("Wrote tracker headers", zap.String("spreadsheet_id", trackerID))

	return nil
}

// Append adds one row per record to the tracker
func (w *Writer) Append(ctx context.Context, trackerID string, records []core.JobEmailRecord) error {
	if len(records) == 0 {
		return nil
	}

	body := &sheets.ValueRange{
		Values: buildRows(records),
	}

	_, err := w.svc.Spreadsheets.Values.Append(trackerID, appendRange, body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append records: %w", err)
	}

	w.logger.Info("Appended records to tracker",
		zap.Int("count", len(records)),
		zap.String("spreadsheet_id", trackerID))

	return nil
}

// buildRows maps records onto tracker rows in header order. The sender
// lands in the contact column and the subject in the notes column, which
// keeps the message traceable from the sheet alone.
func buildRows(records []core.JobEmailRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []interface{}{
			rec.Company,
			rec.Position,
			formatDate(rec.Date),
			rec.Category.StatusLabel(),
			"Email",
			rec.Sender,
			rec.Subject,
			"",
			"",
		})
	}
	return rows
}

// formatDate normalizes an RFC 2822 date header to YYYY-MM-DD. Headers
// that don't parse are written through untouched.
func formatDate(raw string) string {
	t, err := mail.ParseDate(raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}
