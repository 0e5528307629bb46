package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"appstore-finder/config"
	"appstore-finder/db"
	"appstore-finder/fetcher"
	"appstore-finder/finder"
	"appstore-finder/models"
	"appstore-finder/scraper"
	"appstore-finder/sheets"
)

func main() {
	linksPath := flag.String("links", "links.txt", "Path to file with store URLs, one per line")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	threshold := flag.Int("threshold", -1, "Similarity threshold 0-100 (overrides config)")
	browser := flag.Bool("browser", false, "Fetch pages with a headless browser")
	verbose := flag.Bool("v", false, "Print the links of each product")
	saveDB := flag.Bool("db", false, "Save the run to Postgres (DATABASE_URL or DB_* env vars)")
	spreadsheetURL := flag.String("spreadsheet", "", "Google Sheets URL to export products to (optional)")
	credentialsPath := flag.String("credentials", "", "Path to Google service account credentials JSON file (or use GOOGLE_SHEETS_CREDENTIALS env var)")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *threshold >= 0 {
		cfg.Threshold = *threshold
	}
	if *browser {
		cfg.Fetch.Browser = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Error: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	links, err := scraper.LoadLinks(*linksPath)
	if err != nil {
		log.Fatalf("Error: %v\n", err)
	}

	products, err := findProducts(ctx, cfg, links)
	if err != nil {
		log.Fatalf("Finding products failed: %v\n", err)
	}

	printProducts(os.Stdout, products, *verbose)

	if *saveDB {
		saveRun(ctx, products, len(links))
	}

	if *spreadsheetURL != "" {
		exportProducts(ctx, products, *spreadsheetURL, *credentialsPath, *linksPath)
	}
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	var cfg *config.Config
	if _, err := os.Stat(configPath); err == nil {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
			cfg = config.GetDefaultConfig()
		}
	} else {
		log.Println("Config file not found. Using default configuration.")
		cfg = config.GetDefaultConfig()
	}
	return cfg
}

// newFetcher builds the configured fetcher; the returned func releases it
func newFetcher(cfg *config.Config) (fetcher.Fetcher, func(), error) {
	if cfg.Fetch.Browser {
		rf, err := fetcher.NewRodFetcher(cfg.Fetch.Timeout)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create browser fetcher: %w", err)
		}
		return rf, func() {
			if err := rf.Close(); err != nil {
				log.Printf("Warning: Failed to close browser: %v\n", err)
			}
		}, nil
	}

	cf, err := fetcher.NewCollyFetcher(fetcher.CollyOptions{
		UserAgent: cfg.Fetch.UserAgent,
		Timeout:   cfg.Fetch.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create fetcher: %w", err)
	}
	return cf, func() {}, nil
}

// findProducts scrapes the links and groups the entries into products
func findProducts(ctx context.Context, cfg *config.Config, links []string) ([]models.Product, error) {
	stops, err := cfg.StopwordSet()
	if err != nil {
		return nil, err
	}

	f, release, err := newFetcher(cfg)
	if err != nil {
		return nil, err
	}
	defer release()

	entries, stats := scraper.New(f, cfg.Fetch.Delay).Scrape(ctx, links)
	log.Printf("Scraped %d of %d links (%d failed, %d unknown source, %d unparsed)\n",
		stats.Fetched, len(links), stats.Failed, stats.Unknown, stats.Unparsed)

	return finder.Run(entries, stops, cfg.Threshold), nil
}

// printProducts writes product names, one per line, optionally followed by their links
func printProducts(w io.Writer, products []models.Product, verbose bool) {
	for _, p := range products {
		fmt.Fprintln(w, p.Name)
		if verbose {
			for _, link := range p.Links {
				fmt.Fprintf(w, "    %s\n", link)
			}
		}
	}
}

func saveRun(ctx context.Context, products []models.Product, linksCount int) {
	database, err := db.NewDB("")
	if err != nil {
		log.Printf("Warning: Failed to initialize database: %v\n", err)
		return
	}
	defer database.Close()

	runID, err := database.SaveRun(ctx, products, linksCount)
	if err != nil {
		log.Printf("Warning: Failed to save run: %v\n", err)
		return
	}
	log.Printf("Saved run %d (%d products)\n", runID, len(products))
}

func exportProducts(ctx context.Context, products []models.Product, spreadsheetURL, credentialsPath, source string) {
	spreadsheetID := sheets.ExtractSpreadsheetID(spreadsheetURL)
	if spreadsheetID == "" {
		log.Printf("Warning: Could not extract spreadsheet ID from URL: %s\n", spreadsheetURL)
		return
	}

	writer, err := sheets.NewWriter(ctx, spreadsheetID, credentialsPath)
	if err != nil {
		log.Printf("Warning: Failed to initialize Google Sheets writer: %v\n", err)
		return
	}

	sheetName := "Products " + time.Now().Format("2006-01-02 15.04.05")
	if _, _, err := writer.CreateSheetAndWriteProducts(ctx, sheetName, products, source); err != nil {
		log.Printf("Warning: Failed to export products: %v\n", err)
	}
}
