package models

// Entry is a single scraped page: the raw product name and author as they
// appeared on the source site, and the URL they came from.
type Entry struct {
	Name   string
	Author string
	URL    string
	Source string // Source site that produced the entry (informational)
}

// Key identifies a candidate product during clustering
type Key struct {
	Name   string // Normalized name (first two significant tokens)
	Author string // Raw author string
}

// Less orders keys by name, then author
func (k Key) Less(other Key) bool {
	if k.Name != other.Name {
		return k.Name < other.Name
	}
	return k.Author < other.Author
}

// Product is a deduplicated product with all links that refer to it
type Product struct {
	Name  string
	Links []string
}

// NewProduct creates a product owning a copy of links
func NewProduct(name string, links []string) *Product {
	p := &Product{Name: name, Links: make([]string, 0, len(links))}
	p.Links = append(p.Links, links...)
	return p
}

// Extend appends late-discovered links to the product
func (p *Product) Extend(links ...string) {
	p.Links = append(p.Links, links...)
}

func (p Product) String() string {
	return p.Name
}
