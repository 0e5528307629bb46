package scraper

import (
	"context"
	"errors"
	"log"
	"time"

	"appstore-finder/fetcher"
	"appstore-finder/models"
	"appstore-finder/parser"
)

// ErrUnknownSource is returned for URLs no store extractor recognizes
var ErrUnknownSource = parser.ErrUnknownSource

// Stats summarizes a harvest
type Stats struct {
	Fetched  int // Pages that yielded an entry
	Failed   int // Fetch errors
	Unknown  int // URLs with no matching source
	Unparsed int // Pages missing a name or author
}

// Total returns the number of URLs processed
func (s Stats) Total() int {
	return s.Fetched + s.Failed + s.Unknown + s.Unparsed
}

// Scraper harvests (name, author, url) entries from store pages
type Scraper struct {
	Fetcher fetcher.Fetcher
	Delay   time.Duration // Pause between consecutive URLs
}

// New creates a Scraper
func New(f fetcher.Fetcher, delay time.Duration) *Scraper {
	return &Scraper{Fetcher: f, Delay: delay}
}

// Scrape visits urls in order and returns one entry per page that could be parsed.
// Pages that fail are logged and skipped.
func (s *Scraper) Scrape(ctx context.Context, urls []string) ([]models.Entry, Stats) {
	var entries []models.Entry
	var stats Stats

	for i, url := range urls {
		if ctx.Err() != nil {
			log.Printf("Warning: Scrape cancelled after %d of %d urls: %v\n", i, len(urls), ctx.Err())
			break
		}

		if i > 0 && s.Delay > 0 {
			if !sleep(ctx, s.Delay) {
				log.Printf("Warning: Scrape cancelled after %d of %d urls: %v\n", i, len(urls), ctx.Err())
				break
			}
		}

		entry, err := s.scrapeOne(url)
		switch {
		case err == nil:
			entries = append(entries, entry)
			stats.Fetched++
		case errors.Is(err, ErrUnknownSource):
			log.Println("Unknown data source")
			stats.Unknown++
		case errors.Is(err, errFetch):
			log.Printf("Failed to get url: %s\n", url)
			stats.Failed++
		default:
			log.Printf("Warning: Failed to parse %s: %v\n", url, err)
			stats.Unparsed++
		}
	}

	return entries, stats
}

var errFetch = errors.New("fetch failed")

func (s *Scraper) scrapeOne(url string) (models.Entry, error) {
	source, err := parser.ForURL(url)
	if err != nil {
		return models.Entry{}, err
	}

	body, err := s.Fetcher.Fetch(url)
	if err != nil {
		return models.Entry{}, errors.Join(errFetch, err)
	}

	page, err := parser.NewPage(body)
	if err != nil {
		return models.Entry{}, err
	}
	ext := source.New(page)

	name, err := ext.Name()
	if err != nil {
		return models.Entry{}, err
	}
	author, err := ext.Author()
	if err != nil {
		return models.Entry{}, err
	}

	return models.Entry{
		Name:   name,
		Author: author,
		URL:    url,
		Source: source.ID,
	}, nil
}

// sleep waits for d or until ctx is done; it reports whether the full delay elapsed
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
