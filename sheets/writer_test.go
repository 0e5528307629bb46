package sheets

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"appstore-finder/models"
)

func TestExtractSpreadsheetID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"edit url", "https://docs.google.com/spreadsheets/d/abc123/edit", "abc123"},
		{"sharing url", "https://docs.google.com/spreadsheets/d/abc123/edit?usp=sharing", "abc123"},
		{"query only", "https://docs.google.com/spreadsheets/d/abc123?x=1", "abc123"},
		{"bare id", "abc123", "abc123"},
		{"other url", "https://example.com/sheet", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSpreadsheetID(tt.url); got != tt.want {
				t.Errorf("ExtractSpreadsheetID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Run 2026/10/18", "Run 2026_10_18"},
		{"  [apps]  ", "_apps_"},
		{"a:b*c?", "a_b_c_"},
		{"   ", "Sheet1"},
		{strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}

	for _, tt := range tests {
		if got := sanitizeSheetName(tt.in); got != tt.want {
			t.Errorf("sanitizeSheetName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildRows(t *testing.T) {
	products := []models.Product{
		{Name: "Messenger", Links: []string{"u1", "u2"}},
		{Name: "Skype", Links: []string{"u3"}},
	}

	got := buildRows(products, "links.txt")
	want := [][]interface{}{
		{"Source", "links.txt"},
		{"Name", "Link count", "Links"},
		{"Messenger", 2, "u1\nu2"},
		{"Skype", 1, "u3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildRows() = %v, want %v", got, want)
	}

	if rows := buildRows(nil, ""); len(rows) != 1 {
		t.Errorf("buildRows(nil) = %v, want header only", rows)
	}
}

func TestReadCredentials(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.json")
	os.WriteFile(valid, []byte(`{"type":"service_account","project_id":"p"}`), 0600)
	if _, err := readCredentials(valid); err != nil {
		t.Errorf("readCredentials(valid) error = %v", err)
	}

	user := filepath.Join(dir, "user.json")
	os.WriteFile(user, []byte(`{"type":"authorized_user"}`), 0600)
	if _, err := readCredentials(user); err == nil {
		t.Error("readCredentials(user) expected error")
	}

	broken := filepath.Join(dir, "broken.json")
	os.WriteFile(broken, []byte(`{`), 0600)
	if _, err := readCredentials(broken); err == nil {
		t.Error("readCredentials(broken) expected error")
	}

	t.Setenv("GOOGLE_SHEETS_CREDENTIALS", "")
	if _, err := readCredentials(""); err == nil {
		t.Error("readCredentials(\"\") expected error with empty env")
	}

	t.Setenv("GOOGLE_SHEETS_CREDENTIALS", "  {\"type\":\"service_account\"}\n")
	if _, err := readCredentials(""); err != nil {
		t.Errorf("readCredentials(env) error = %v", err)
	}
}
