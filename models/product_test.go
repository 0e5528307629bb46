package models

import "testing"

func TestNewProductCopiesLinks(t *testing.T) {
	links := []string{"https://a", "https://b"}
	p := NewProduct("Skype", links)

	links[0] = "https://changed"
	if p.Links[0] != "https://a" {
		t.Errorf("NewProduct should copy links, got %v", p.Links)
	}
}

func TestProductExtend(t *testing.T) {
	p := NewProduct("Skype", []string{"https://a"})
	p.Extend("https://b", "https://c")

	want := []string{"https://a", "https://b", "https://c"}
	if len(p.Links) != len(want) {
		t.Fatalf("Links = %v, want %v", p.Links, want)
	}
	for i := range want {
		if p.Links[i] != want[i] {
			t.Errorf("Links[%d] = %q, want %q", i, p.Links[i], want[i])
		}
	}
}

func TestProductString(t *testing.T) {
	p := Product{Name: "Messenger"}
	if p.String() != "Messenger" {
		t.Errorf("String() = %q, want %q", p.String(), "Messenger")
	}
}

func TestKeyLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want bool
	}{
		{"name first", Key{"Alpha", "Z"}, Key{"Beta", "A"}, true},
		{"author breaks tie", Key{"Skype", "Skype"}, Key{"Skype", "Skype Inc"}, true},
		{"equal", Key{"Skype", "Skype"}, Key{"Skype", "Skype"}, false},
		{"greater", Key{"Zoom", ""}, Key{"Alpha", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
