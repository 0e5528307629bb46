package finder

import (
	"sort"
	"unicode/utf8"

	"appstore-finder/models"
	"appstore-finder/normalize"
	"appstore-finder/similarity"
	"appstore-finder/stoplist"
)

// Finder groups scraped entries into deduplicated products
type Finder struct {
	normalizer *normalize.Normalizer
	oracle     similarity.Oracle
}

// New creates a Finder
func New(normalizer *normalize.Normalizer, oracle similarity.Oracle) *Finder {
	return &Finder{
		normalizer: normalizer,
		oracle:     oracle,
	}
}

// Run groups entries into products using the given stopwords and
// similarity threshold
func Run(entries []models.Entry, stops *stoplist.Set, threshold int) []models.Product {
	f := New(normalize.NewNormalizer(stops), similarity.NewFuzzy(threshold))
	return f.Find(entries)
}

// Find collects entries, runs both merge passes and returns the products
// sorted by name
func (f *Finder) Find(entries []models.Entry) []models.Product {
	idx := f.Collect(entries)
	exact, rest := f.MergeExactNames(idx)
	similar := f.MergeSimilar(rest)
	return Assemble(exact, similar)
}

// Collect builds the key -> links index from the entries in order
func (f *Finder) Collect(entries []models.Entry) *LinkIndex {
	idx := NewLinkIndex()
	for _, e := range entries {
		key := models.Key{
			Name:   f.normalizer.Normalize(e.Name),
			Author: e.Author,
		}
		idx.Add(key, e.URL)
	}
	return idx
}

// MergeExactNames merges keys that share a normalized name and whose authors
// are almost similar. Only names shared by more than one key are considered.
// Keys are walked in (name, author) order and each one is compared with the
// current representative only, so similarity is not applied transitively.
// A merged group lists its links in the order its keys were first seen.
//
// It returns the merged groups and an index of the keys whose names were
// not shared.
func (f *Finder) MergeExactNames(idx *LinkIndex) ([]Group, *LinkIndex) {
	keys := idx.Keys()

	nameCount := make(map[string]int, len(keys))
	for _, k := range keys {
		nameCount[k.Name]++
	}

	var contested []models.Key
	rest := NewLinkIndex()
	for _, k := range keys {
		if nameCount[k.Name] > 1 {
			contested = append(contested, k)
			continue
		}
		rest.Add(k, idx.Links(k)...)
	}

	sort.SliceStable(contested, func(i, j int) bool {
		return contested[i].Less(contested[j])
	})

	// members[i] holds the keys merged into the i-th representative
	var reps []models.Key
	var members [][]models.Key
	for _, k := range contested {
		if n := len(reps); n > 0 {
			rep := reps[n-1]
			if k.Name == rep.Name && f.oracle.AlmostSimilar(k.Author, rep.Author) {
				members[n-1] = append(members[n-1], k)
				continue
			}
		}
		reps = append(reps, k)
		members = append(members, []models.Key{k})
	}

	groups := make([]Group, 0, len(reps))
	for i, rep := range reps {
		group := members[i]
		sort.SliceStable(group, func(a, b int) bool {
			return idx.Position(group[a]) < idx.Position(group[b])
		})

		g := newGroup(rep, nil)
		for _, k := range group {
			g.Links = append(g.Links, idx.Links(k)...)
		}
		groups = append(groups, g)
	}

	return groups, rest
}

// MergeSimilar walks keys in first-seen order and merges each key into the
// current representative when both names and authors are almost similar.
// The key with the shorter name becomes the representative; on a tie the
// current representative is kept.
func (f *Finder) MergeSimilar(idx *LinkIndex) []Group {
	var groups []Group
	for _, k := range idx.Keys() {
		if n := len(groups); n > 0 {
			rep := &groups[n-1]
			if f.oracle.AlmostSimilar(k.Name, rep.Key.Name) && f.oracle.AlmostSimilar(k.Author, rep.Key.Author) {
				if nameLen(k.Name) < nameLen(rep.Key.Name) {
					rep.Key = k
				}
				rep.Links = append(rep.Links, idx.Links(k)...)
				continue
			}
		}
		groups = append(groups, newGroup(k, idx.Links(k)))
	}
	return groups
}

// Assemble turns groups into products sorted by name. Products with equal
// names keep the order in which their groups were passed.
func Assemble(passes ...[]Group) []models.Product {
	products := []models.Product{}
	for _, groups := range passes {
		for _, g := range groups {
			products = append(products, *models.NewProduct(g.Key.Name, g.Links))
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	return products
}

func nameLen(s string) int {
	return utf8.RuneCountInString(s)
}
