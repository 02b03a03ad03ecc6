package proptest

import (
	"errors"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"shelf/internal/catalog"
)

// shelfModel is the trivially-correct in-memory twin the real catalog
// is checked against.
type shelfModel struct {
	books  []catalog.Book
	lastID int
}

func (m *shelfModel) add(title, author string, year int) catalog.Book {
	m.lastID++
	b := catalog.Book{
		ID:     m.lastID,
		Title:  title,
		Author: author,
		Year:   year,
		Status: catalog.StatusAvailable,
	}
	m.books = append(m.books, b)
	return b
}

func (m *shelfModel) remove(id int) bool {
	i := slices.IndexFunc(m.books, func(b catalog.Book) bool { return b.ID == id })
	if i < 0 {
		return false
	}
	m.books = slices.Delete(m.books, i, i+1)
	return true
}

func (m *shelfModel) updateStatus(id int, status catalog.Status) bool {
	i := slices.IndexFunc(m.books, func(b catalog.Book) bool { return b.ID == id })
	if i < 0 {
		return false
	}
	m.books[i].Status = status
	return true
}

func (m *shelfModel) someID(t *rapid.T) int {
	if len(m.books) == 0 || rapid.Bool().Draw(t, "missTarget") {
		return m.lastID + rapid.IntRange(1, 100).Draw(t, "offset")
	}
	return rapid.SampledFrom(m.books).Draw(t, "target").ID
}

func TestCatalog_MatchesModel(t *testing.T) {
	RunWithCatalog(t, func(h *CatalogHarness) {
		model := &shelfModel{}

		h.T.Repeat(map[string]func(*rapid.T){
			"add": func(rt *rapid.T) {
				spec := GenBookSpec(rt)
				got, err := h.Catalog.Add(spec.Title, spec.Author, spec.Year)
				if err != nil {
					rt.Fatalf("failed to add book: %v", err)
				}
				want := model.add(spec.Title, spec.Author, spec.Year)
				assertBooksEqual(rt, want, got)
			},
			"remove": func(rt *rapid.T) {
				id := model.someID(rt)
				err := h.Catalog.Remove(id)
				if model.remove(id) {
					if err != nil {
						rt.Fatalf("failed to remove book %d: %v", id, err)
					}
				} else if !errors.Is(err, catalog.ErrNotFound) {
					rt.Fatalf("removing unknown id %d: got %v, want ErrNotFound", id, err)
				}
			},
			"updateStatus": func(rt *rapid.T) {
				id := model.someID(rt)
				status := statusGen().Draw(rt, "status")
				err := h.Catalog.UpdateStatus(id, status)
				if model.updateStatus(id, status) {
					if err != nil {
						rt.Fatalf("failed to update book %d: %v", id, err)
					}
				} else if !errors.Is(err, catalog.ErrNotFound) {
					rt.Fatalf("updating unknown id %d: got %v, want ErrNotFound", id, err)
				}
			},
			"get": func(rt *rapid.T) {
				id := model.someID(rt)
				got, err := h.Catalog.Get(id)
				i := slices.IndexFunc(model.books, func(b catalog.Book) bool { return b.ID == id })
				if i < 0 {
					if !errors.Is(err, catalog.ErrNotFound) {
						rt.Fatalf("getting unknown id %d: got %v, want ErrNotFound", id, err)
					}
					return
				}
				if err != nil {
					rt.Fatalf("failed to get book %d: %v", id, err)
				}
				assertBooksEqual(rt, model.books[i], got)
			},
			"reload": func(rt *rapid.T) {
				h.Catalog = reopen(h)
				// The id watermark lives in memory only; a fresh load
				// restarts it from the highest id on disk.
				model.lastID = 0
				for _, b := range model.books {
					model.lastID = max(model.lastID, b.ID)
				}
			},
			"": func(rt *rapid.T) {
				assertSameBooks(rt, model.books, h.Catalog.List())
				verifyStructuralInvariants(rt, h.Catalog)
			},
		})
	})
}
