package finder

import "appstore-finder/models"

// LinkIndex maps keys to their links and remembers the order in which keys
// were first seen
type LinkIndex struct {
	keys  []models.Key
	order map[models.Key]int
	links map[models.Key][]string
}

// NewLinkIndex creates an empty index
func NewLinkIndex() *LinkIndex {
	return &LinkIndex{
		order: make(map[models.Key]int),
		links: make(map[models.Key][]string),
	}
}

// Add appends links to the link set of key, creating it if needed
func (idx *LinkIndex) Add(key models.Key, links ...string) {
	existing, ok := idx.links[key]
	if !ok {
		idx.order[key] = len(idx.keys)
		idx.keys = append(idx.keys, key)
		existing = []string{}
	}
	idx.links[key] = append(existing, links...)
}

// Keys returns all keys in first-seen order
func (idx *LinkIndex) Keys() []models.Key {
	out := make([]models.Key, len(idx.keys))
	copy(out, idx.keys)
	return out
}

// Position returns the first-seen position of key, or -1 if it is absent
func (idx *LinkIndex) Position(key models.Key) int {
	if pos, ok := idx.order[key]; ok {
		return pos
	}
	return -1
}

// Links returns a copy of the links stored under key
func (idx *LinkIndex) Links(key models.Key) []string {
	links := idx.links[key]
	out := make([]string, len(links))
	copy(out, links)
	return out
}

// Len returns the number of distinct keys
func (idx *LinkIndex) Len() int {
	return len(idx.keys)
}

// LinkCount returns the total number of links across all keys
func (idx *LinkIndex) LinkCount() int {
	n := 0
	for _, links := range idx.links {
		n += len(links)
	}
	return n
}

// Group is a working cluster: a representative key and the links merged into it
type Group struct {
	Key   models.Key
	Links []string
}

func newGroup(key models.Key, links []string) Group {
	g := Group{Key: key, Links: make([]string, 0, len(links))}
	g.Links = append(g.Links, links...)
	return g
}
