package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"appstore-finder/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Writer handles writing products to Google Sheets
type Writer struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewWriter creates a new Google Sheets writer
func NewWriter(ctx context.Context, spreadsheetID string, credentialsPath string) (*Writer, error) {
	credsJSON, err := readCredentials(credentialsPath)
	if err != nil {
		return nil, err
	}

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(credsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

// readCredentials loads service account JSON from a file or GOOGLE_SHEETS_CREDENTIALS
func readCredentials(credentialsPath string) ([]byte, error) {
	var credsJSON []byte

	if credentialsPath != "" {
		data, err := os.ReadFile(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		credsJSON = data
	} else {
		credsEnv := strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_CREDENTIALS"))
		if credsEnv == "" {
			return nil, fmt.Errorf("credentials not found: GOOGLE_SHEETS_CREDENTIALS environment variable is empty or not set")
		}
		log.Printf("Reading credentials from GOOGLE_SHEETS_CREDENTIALS environment variable (%d bytes)\n", len(credsEnv))
		credsJSON = []byte(credsEnv)
	}

	var creds map[string]interface{}
	if err := json.Unmarshal(credsJSON, &creds); err != nil {
		return nil, fmt.Errorf("invalid credentials JSON (check if JSON is properly formatted): %w", err)
	}

	if creds["type"] != "service_account" {
		return nil, fmt.Errorf("credentials must be a service account JSON file (type: service_account), got type: %v", creds["type"])
	}

	return credsJSON, nil
}

// CreateSheetAndWriteProducts creates a new sheet at the beginning of the
// spreadsheet and writes the products to it. source is an optional label
// (e.g. the links file) written as a metadata row.
// Returns the sheet name and sheet ID (gid) that was created.
func (w *Writer) CreateSheetAndWriteProducts(ctx context.Context, sheetName string, products []models.Product, source string) (string, int64, error) {
	sheetName = sanitizeSheetName(sheetName)

	insertIndex := int64(0)
	batchUpdateRequest := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: sheetName,
						Index: insertIndex,
					},
				},
			},
		},
	}

	batchUpdateResp, err := w.service.Spreadsheets.BatchUpdate(w.spreadsheetID, batchUpdateRequest).Context(ctx).Do()
	if err != nil {
		return "", 0, fmt.Errorf("failed to create sheet: %w", err)
	}

	var sheetID int64
	if len(batchUpdateResp.Replies) > 0 && batchUpdateResp.Replies[0].AddSheet != nil {
		sheetID = batchUpdateResp.Replies[0].AddSheet.Properties.SheetId
	}

	log.Printf("Created sheet '%s' with ID %d at index %d\n", sheetName, sheetID, insertIndex)

	valueRange := &sheets.ValueRange{
		Values: buildRows(products, source),
	}

	_, err = w.service.Spreadsheets.Values.Update(w.spreadsheetID, fmt.Sprintf("'%s'!A1", sheetName), valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return "", 0, fmt.Errorf("failed to write to sheet: %w", err)
	}

	log.Printf("Successfully wrote %d products to sheet '%s'\n", len(products), sheetName)
	return sheetName, sheetID, nil
}

// buildRows lays out the product table: optional metadata row, header, one row per product
func buildRows(products []models.Product, source string) [][]interface{} {
	var values [][]interface{}

	if source != "" {
		values = append(values, []interface{}{"Source", source})
	}

	values = append(values, []interface{}{"Name", "Link count", "Links"})

	for _, p := range products {
		values = append(values, []interface{}{
			p.Name,
			len(p.Links),
			strings.Join(p.Links, "\n"),
		})
	}

	return values
}

// sanitizeSheetName removes invalid characters from sheet name
func sanitizeSheetName(name string) string {
	// Google Sheets sheet names cannot contain: / \ ? * [ ] :
	invalidChars := []string{"/", "\\", "?", "*", "[", "]", ":", "'"}
	result := name
	for _, char := range invalidChars {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	if result == "" {
		result = "Sheet1"
	}
	if utf8.RuneCountInString(result) > 100 {
		result = string([]rune(result)[:100])
	}
	return result
}

// ExtractSpreadsheetID extracts the spreadsheet ID from a Google Sheets URL.
// A value without "/d/" is taken to be a bare ID.
func ExtractSpreadsheetID(url string) string {
	// https://docs.google.com/spreadsheets/d/SPREADSHEET_ID/edit?usp=sharing
	parts := strings.Split(url, "/d/")
	if len(parts) < 2 {
		if strings.ContainsAny(url, "/?") {
			return ""
		}
		return strings.TrimSpace(url)
	}

	idPart := parts[1]
	if idx := strings.Index(idPart, "/"); idx != -1 {
		idPart = idPart[:idx]
	}
	if idx := strings.Index(idPart, "?"); idx != -1 {
		idPart = idPart[:idx]
	}

	return strings.TrimSpace(idPart)
}
