package proptest

import (
	"shelf/internal/catalog"
	"strings"

	"pgregory.net/rapid"
)

// verifyStructuralInvariants checks what must hold for any catalog at
// any time: Count matches List, every book is valid, ids are unique.
func verifyStructuralInvariants(t *rapid.T, cat catalog.Catalog) {
	t.Helper()

	count := cat.Count()
	list := cat.List()
	if count != len(list) {
		t.Fatalf("Count()=%d but len(List())=%d", count, len(list))
	}

	seen := make(map[int]bool)
	for _, b := range list {
		if b.ID <= 0 {
			t.Fatalf("book %q has non-positive id %d", b.Title, b.ID)
		}
		if seen[b.ID] {
			t.Fatalf("duplicate id %d found in List()", b.ID)
		}
		seen[b.ID] = true

		if strings.TrimSpace(b.Title) == "" {
			t.Fatalf("book %d has a blank title", b.ID)
		}
		if strings.TrimSpace(b.Author) == "" {
			t.Fatalf("book %d has a blank author", b.ID)
		}
		if _, err := catalog.ParseStatus(string(b.Status)); err != nil {
			t.Fatalf("book %d carries invalid status %q", b.ID, b.Status)
		}
	}
}
