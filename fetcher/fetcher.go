package fetcher

// Fetcher interface defines the contract for fetching implementations
type Fetcher interface {
	// Fetch retrieves the HTML content of a single store page
	Fetch(url string) (string, error)
}
