package fetcher

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// RodFetcher implements the Fetcher interface using rod (headless browser)
// for store pages that render their content with JavaScript
type RodFetcher struct {
	browser *rod.Browser
	timeout time.Duration
}

// NewRodFetcher launches a headless browser
func NewRodFetcher(timeout time.Duration) (*RodFetcher, error) {
	userDataDir := browserDataDir()
	if err := os.MkdirAll(userDataDir, 0755); err != nil {
		log.Printf("Warning: Failed to create browser data directory %s: %v\n", userDataDir, err)
		userDataDir = ""
	}

	l := launcher.New().
		Headless(true).
		Set("disable-blink-features", "AutomationControlled").
		NoSandbox(true).
		Leakless(false).
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("disable-extensions").
		Set("mute-audio")
	if userDataDir != "" {
		l = l.UserDataDir(userDataDir)
	}

	// Prefer a system Chrome/Chromium over downloading one
	for _, path := range []string{
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/snap/bin/chromium",
	} {
		if _, err := os.Stat(path); err == nil {
			l = l.Bin(path)
			break
		}
	}

	browserURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &RodFetcher{
		browser: browser,
		timeout: timeout,
	}, nil
}

// browserDataDir returns the browser profile directory from BROWSER_DATA_DIR
func browserDataDir() string {
	if dir := os.Getenv("BROWSER_DATA_DIR"); dir != "" {
		return dir
	}
	return "/tmp/appstore-finder-data"
}

// Close closes the browser
func (rf *RodFetcher) Close() error {
	if rf.browser != nil {
		return rf.browser.Close()
	}
	return nil
}

// Fetch implements the Fetcher interface
func (rf *RodFetcher) Fetch(url string) (string, error) {
	page, err := rf.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("failed to create page: %w", err)
	}
	defer page.Close()

	if err := page.Timeout(rf.timeout).Navigate(url); err != nil {
		return "", fmt.Errorf("failed to navigate: %w", err)
	}

	if err := page.Timeout(rf.timeout).WaitLoad(); err != nil {
		log.Printf("Warning: Page %s did not finish loading, continuing anyway: %v\n", url, err)
	}

	if err := page.Timeout(rf.timeout).WaitStable(500 * time.Millisecond); err != nil {
		log.Printf("Warning: Page %s did not stabilize within timeout, continuing anyway: %v\n", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}

	return html, nil
}
