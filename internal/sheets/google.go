package sheets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// GoogleConnector opens authenticated sessions against a named Google
// spreadsheet using service-account credentials. The spreadsheet is
// addressed by name, so each Connect resolves the name to an id through
// the Drive API before opening the Sheets service.
type GoogleConnector struct {
	credentialsPath string
	sheetName       string
}

// NewGoogleConnector validates the storage configuration and returns a
// connector. Missing configuration or a missing credentials file is a
// deployment defect, reported loudly at construction rather than deferred
// to the first request.
func NewGoogleConnector(credentialsPath, sheetName string) (*GoogleConnector, error) {
	if strings.TrimSpace(credentialsPath) == "" {
		return nil, ErrMissingCredentials
	}
	if strings.TrimSpace(sheetName) == "" {
		return nil, ErrMissingSheetName
	}
	if _, err := os.Stat(credentialsPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCredentialsNotFound, credentialsPath)
	}
	return &GoogleConnector{
		credentialsPath: credentialsPath,
		sheetName:       sheetName,
	}, nil
}

// Connect authenticates, resolves the spreadsheet name to an id, and
// returns a store bound to that spreadsheet.
func (c *GoogleConnector) Connect(ctx context.Context) (Store, error) {
	driveSvc, err := drive.NewService(ctx,
		option.WithCredentialsFile(c.credentialsPath),
		option.WithScopes(drive.DriveMetadataReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: create drive service: %w", err)
	}

	query := fmt.Sprintf(
		"name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false",
		strings.ReplaceAll(c.sheetName, "'", `\'`),
	)
	list, err := driveSvc.Files.List().
		Q(query).
		PageSize(1).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: search spreadsheet %q: %w", c.sheetName, err)
	}
	if len(list.Files) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrSpreadsheetNotFound, c.sheetName)
	}

	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(c.credentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: create sheets service: %w", err)
	}

	return &googleStore{
		svc:           svc,
		spreadsheetID: list.Files[0].Id,
	}, nil
}

// googleStore is a Sheets session bound to one spreadsheet id.
type googleStore struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func (s *googleStore) ResolveWorksheet(ctx context.Context, title string) (string, error) {
	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets(properties(title,index))").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("sheets: get spreadsheet metadata: %w", err)
	}
	if len(meta.Sheets) == 0 {
		return "", fmt.Errorf("%w: spreadsheet has no worksheets", ErrWorksheetNotFound)
	}

	if title == "" {
		return meta.Sheets[0].Properties.Title, nil
	}
	for _, sh := range meta.Sheets {
		if sh.Properties.Title == title {
			return title, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrWorksheetNotFound, title)
}

func (s *googleStore) Append(ctx context.Context, worksheet string, row []string) error {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, rowRange(worksheet), &sheetsapi.ValueRange{
		Values: [][]interface{}{values},
	}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

func (s *googleStore) HeaderRow(ctx context.Context, worksheet string) ([]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, headerRange(worksheet)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	header := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		header = append(header, fmt.Sprint(cell))
	}
	return header, nil
}

func (s *googleStore) WriteHeader(ctx context.Context, worksheet string, header []string) error {
	values := make([]interface{}, len(header))
	for i, cell := range header {
		values[i] = cell
	}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, headerRange(worksheet), &sheetsapi.ValueRange{
		Values: [][]interface{}{values},
	}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

// quoteTitle escapes a worksheet title for use in an A1 range.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func rowRange(worksheet string) string {
	return quoteTitle(worksheet) + "!A1"
}

func headerRange(worksheet string) string {
	return quoteTitle(worksheet) + "!1:1"
}
