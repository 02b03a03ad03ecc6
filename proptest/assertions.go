package proptest

import (
	"shelf/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertBooksEqual(t *rapid.T, expected, actual catalog.Book) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("book mismatch (-want +got):\n%s", diff)
	}
}

func assertSameBooks(t *rapid.T, expected, actual []catalog.Book) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("book list mismatch (-want +got):\n%s", diff)
	}
}

func assertSubset(t *rapid.T, subset, superset []catalog.Book) {
	t.Helper()
	superIDs := make(map[int]bool)
	for _, b := range superset {
		superIDs[b.ID] = true
	}
	for _, b := range subset {
		if !superIDs[b.ID] {
			t.Fatalf("subset contains id %d not in superset", b.ID)
		}
	}
}
