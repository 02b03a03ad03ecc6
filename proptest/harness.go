package proptest

import (
	"os"
	"path/filepath"
	"shelf/internal/catalog"
	"testing"

	"pgregory.net/rapid"
)

const (
	minBooks        = 0
	maxBooks        = 20
	typicalMinBooks = 1
	typicalMaxBooks = 10
)

type BookSpec struct {
	Title  string
	Author string
	Year   int
}

func GenBookSpec(t *rapid.T) BookSpec {
	return BookSpec{
		Title:  titleGen().Draw(t, "title"),
		Author: authorGen().Draw(t, "author"),
		Year:   yearGen.Draw(t, "year"),
	}
}

type CatalogHarness struct {
	T       *rapid.T
	Dir     string
	Catalog catalog.Catalog
}

func (h *CatalogHarness) MustAddBook() catalog.Book {
	spec := GenBookSpec(h.T)
	b, err := h.Catalog.Add(spec.Title, spec.Author, spec.Year)
	if err != nil {
		h.T.Fatalf("failed to add book: %v", err)
	}
	return b
}

func (h *CatalogHarness) AddBooks(minCount, maxCount int) []catalog.Book {
	var added []catalog.Book
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numBooks")
	for range n {
		added = append(added, h.MustAddBook())
	}
	return added
}

func RunWithCatalog(t *testing.T, fn func(h *CatalogHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		cat, err := catalog.NewFileCatalog(filepath.Join(iterDir, "books.json"))
		if err != nil {
			rt.Fatalf("failed to create catalog: %v", err)
		}

		fn(&CatalogHarness{T: rt, Dir: iterDir, Catalog: cat})
	})
}
