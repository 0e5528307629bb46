package stoplist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultContainsEnglish(t *testing.T) {
	set := Default()

	for _, w := range []string{"the", "a", "for", "and", "of"} {
		if !set.Contains(w) {
			t.Errorf("%q should be a stopword", w)
		}
	}

	if set.Contains("Skype") {
		t.Error("'Skype' should not be a stopword")
	}
}

func TestContainsIsCaseSensitive(t *testing.T) {
	set := Default()

	if set.Contains("The") {
		t.Error("'The' should not match lowercase stopword 'the'")
	}
}

func TestNewMergesLists(t *testing.T) {
	set := New([]string{"free", "app"}, []string{"app", "pro"})

	if set.Len() != 3 {
		t.Errorf("Expected 3 stopwords, got %d", set.Len())
	}

	want := []string{"app", "free", "pro"}
	got := set.Words()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNilSet(t *testing.T) {
	var set *Set

	if set.Contains("the") {
		t.Error("nil set should contain nothing")
	}
	if set.Len() != 0 {
		t.Error("nil set should be empty")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "stoplist.yaml")
	content := "terms:\n  - free\n  - lite\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	terms, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(terms) != 2 || terms[0] != "free" || terms[1] != "lite" {
		t.Errorf("Load() = %v, want [free lite]", terms)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/stoplist.yaml"); err == nil {
		t.Error("Should error on nonexistent stoplist")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("terms: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Should error on invalid YAML")
	}
}
