package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/kaptiva-io/lead-listener/internal/extraction"
	"github.com/kaptiva-io/lead-listener/pkg/logging"
)

// Header is the fixed first-row layout provisioned by SetupHeaders.
var Header = []string{"Timestamp", "Full Name", "Phone Number", "ID Document"}

const timestampLayout = "2006-01-02 15:04:05"

// Store is one authenticated session bound to a single spreadsheet.
type Store interface {
	// ResolveWorksheet maps a worksheet title to the title to write to.
	// An empty title selects the first worksheet of the spreadsheet.
	ResolveWorksheet(ctx context.Context, title string) (string, error)

	// Append adds a row after the last row of the worksheet.
	Append(ctx context.Context, worksheet string, row []string) error

	// HeaderRow returns the current contents of the worksheet's first row.
	HeaderRow(ctx context.Context, worksheet string) ([]string, error)

	// WriteHeader writes the header into the worksheet's first row.
	WriteHeader(ctx context.Context, worksheet string, header []string) error
}

// Connector opens a fresh Store per persistence attempt. No handle is
// cached across requests; append order between concurrent requests is
// unconstrained.
type Connector interface {
	Connect(ctx context.Context) (Store, error)
}

// Gateway persists extraction results as timestamped spreadsheet rows.
type Gateway struct {
	connector Connector
	logger    *logging.Logger

	// now is swappable for tests
	now func() time.Time
}

// NewGateway creates a persistence gateway on top of a store connector.
func NewGateway(connector Connector, logger *logging.Logger) *Gateway {
	if logger == nil {
		logger = logging.Default()
	}
	return &Gateway{
		connector: connector,
		logger:    logger,
		now:       time.Now,
	}
}

// Persist appends one row for the result, unless the result carries no
// extracted data at all. It reports whether a row was written. Any error
// means the store was unavailable for this attempt; the caller is expected
// to degrade to a not-saved outcome rather than fail the request.
func (g *Gateway) Persist(ctx context.Context, result extraction.Result, worksheetTitle string) (bool, error) {
	if result.Empty() {
		g.logger.Info("all extracted fields unknown, skipping insertion")
		return false, nil
	}

	store, err := g.connector.Connect(ctx)
	if err != nil {
		return false, fmt.Errorf("sheets: open store: %w", err)
	}

	worksheet, err := store.ResolveWorksheet(ctx, worksheetTitle)
	if err != nil {
		return false, fmt.Errorf("sheets: resolve worksheet: %w", err)
	}

	row := []string{
		g.now().Format(timestampLayout),
		result.FullName,
		result.PhoneNumber,
		result.IDDocument,
	}
	if err := store.Append(ctx, worksheet, row); err != nil {
		return false, fmt.Errorf("sheets: append row: %w", err)
	}

	g.logger.Info("lead row appended", "worksheet", worksheet)
	return true, nil
}

// SetupHeaders idempotently ensures the worksheet's first row holds the
// fixed header. It is a no-op when the first row already has any content.
// Provisioning helper, not on the request hot path.
func (g *Gateway) SetupHeaders(ctx context.Context, worksheetTitle string) error {
	store, err := g.connector.Connect(ctx)
	if err != nil {
		return fmt.Errorf("sheets: open store: %w", err)
	}

	worksheet, err := store.ResolveWorksheet(ctx, worksheetTitle)
	if err != nil {
		return fmt.Errorf("sheets: resolve worksheet: %w", err)
	}

	// Best-effort probe: a read failure is treated as an empty first row,
	// not a reason to abort provisioning.
	existing, err := store.HeaderRow(ctx, worksheet)
	if err != nil {
		g.logger.Warn("header probe failed, assuming empty first row", "error", err)
	}
	if len(existing) > 0 {
		g.logger.Info("headers already exist in worksheet", "worksheet", worksheet)
		return nil
	}

	if err := store.WriteHeader(ctx, worksheet, Header); err != nil {
		return fmt.Errorf("sheets: write header: %w", err)
	}

	g.logger.Info("headers set up in worksheet", "worksheet", worksheet)
	return nil
}
