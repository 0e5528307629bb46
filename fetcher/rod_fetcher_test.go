package fetcher

import "testing"

func TestBrowserDataDir(t *testing.T) {
	t.Setenv("BROWSER_DATA_DIR", "")
	if got := browserDataDir(); got != "/tmp/appstore-finder-data" {
		t.Errorf("browserDataDir() = %q, want default", got)
	}

	t.Setenv("BROWSER_DATA_DIR", "/var/lib/finder/chrome")
	if got := browserDataDir(); got != "/var/lib/finder/chrome" {
		t.Errorf("browserDataDir() = %q, want /var/lib/finder/chrome", got)
	}
}
