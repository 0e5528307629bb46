package fetcher

import (
	"fmt"
	"log"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyOptions configures a CollyFetcher
type CollyOptions struct {
	UserAgent string
	Timeout   time.Duration
	Delay     time.Duration // Minimum pause between requests to the same domain
	Verbose   bool
}

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	collector *colly.Collector
	verbose   bool
}

// NewCollyFetcher creates a new CollyFetcher instance
func NewCollyFetcher(opts CollyOptions) (*CollyFetcher, error) {
	// The same page may be listed twice; each listing is a separate link
	options := []colly.CollectorOption{colly.AllowURLRevisit()}
	if opts.UserAgent != "" {
		options = append(options, colly.UserAgent(opts.UserAgent))
	}
	c := colly.NewCollector(options...)

	if opts.Timeout > 0 {
		c.SetRequestTimeout(opts.Timeout)
	}

	if opts.Delay > 0 {
		if err := c.Limit(&colly.LimitRule{
			DomainGlob:  "*",
			Parallelism: 1,
			Delay:       opts.Delay,
		}); err != nil {
			return nil, fmt.Errorf("failed to set rate limit: %w", err)
		}
	}

	return &CollyFetcher{
		collector: c,
		verbose:   opts.Verbose,
	}, nil
}

// Fetch implements the Fetcher interface
func (cf *CollyFetcher) Fetch(url string) (string, error) {
	// Clone shares the HTTP backend and limits but not the callbacks
	c := cf.collector.Clone()

	var body string
	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
		if cf.verbose {
			log.Printf("Fetched %s (%d bytes)\n", r.Request.URL, len(r.Body))
		}
	})

	var fetchErr error
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("status %d: %w", r.StatusCode, err)
	})

	if err := c.Visit(url); err != nil {
		if fetchErr != nil {
			return "", fmt.Errorf("failed to fetch %s: %w", url, fetchErr)
		}
		return "", fmt.Errorf("failed to visit URL: %w", err)
	}
	c.Wait()

	if fetchErr != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, fetchErr)
	}

	return body, nil
}
