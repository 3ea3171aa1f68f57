package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mizuki-dev/animeprompt/internal/domain"
)

func TestContextWindowEvictsOldestFirst(t *testing.T) {
	window := domain.NewContextWindow(3)

	keywords := []string{"knight", "witch", "mecha", "shrine", "dragon"}
	for _, kw := range keywords {
		window.Push(domain.Exchange{Keyword: kw})
	}

	var got []string
	for _, ex := range window.Entries() {
		got = append(got, ex.Keyword)
	}
	want := []string{"mecha", "shrine", "dragon"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("window contents mismatch (-want +got):\n%s", diff)
	}
	if window.Len() != 3 {
		t.Errorf("Len() = %d, want 3", window.Len())
	}
}

func TestContextWindowUnderCapKeepsOrder(t *testing.T) {
	window := domain.NewContextWindow(5)
	window.Push(domain.Exchange{Keyword: "knight"})
	window.Push(domain.Exchange{Keyword: "witch"})

	entries := window.Entries()
	if len(entries) != 2 || entries[0].Keyword != "knight" || entries[1].Keyword != "witch" {
		t.Errorf("Entries() = %+v, want insertion order preserved", entries)
	}
}

func TestContextWindowZeroCapRetainsNothing(t *testing.T) {
	window := domain.NewContextWindow(0)
	window.Push(domain.Exchange{Keyword: "knight"})
	if window.Len() != 0 {
		t.Errorf("Len() = %d, want 0", window.Len())
	}
}

func TestContextWindowEntriesIsACopy(t *testing.T) {
	window := domain.NewContextWindow(2)
	window.Push(domain.Exchange{Keyword: "knight"})

	entries := window.Entries()
	entries[0].Keyword = "mutated"

	if window.Entries()[0].Keyword != "knight" {
		t.Error("mutating the returned slice leaked into the window")
	}
}
