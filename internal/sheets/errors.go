package sheets

import "errors"

var (
	// ErrMissingCredentials is returned when the credentials path is not configured
	ErrMissingCredentials = errors.New("sheets: credentials path is required")

	// ErrMissingSheetName is returned when the spreadsheet name is not configured
	ErrMissingSheetName = errors.New("sheets: spreadsheet name is required")

	// ErrCredentialsNotFound is returned when the credentials file does not exist
	ErrCredentialsNotFound = errors.New("sheets: credentials file not found")

	// ErrSpreadsheetNotFound is returned when no spreadsheet matches the configured name
	ErrSpreadsheetNotFound = errors.New("sheets: spreadsheet not found")

	// ErrWorksheetNotFound is returned when the requested worksheet title does not exist
	ErrWorksheetNotFound = errors.New("sheets: worksheet not found")
)
