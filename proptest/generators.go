package proptest

import (
	"fmt"
	"shelf/internal/catalog"

	"pgregory.net/rapid"
)

var (
	iterDirGen = rapid.StringMatching(`[a-z]{8}`)
	yearGen    = rapid.IntRange(-800, 2100)
	keywordGen = rapid.StringMatching(`[a-z]{1,10}`)
)

func titleGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,30}`)
}

func authorGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z][A-Za-z .]{0,20}`)
}

func statusGen() *rapid.Generator[catalog.Status] {
	return rapid.SampledFrom([]catalog.Status{
		catalog.StatusAvailable,
		catalog.StatusCheckedOut,
	})
}

func bogusStatusGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.Just("available"),
		rapid.Just("lost"),
		rapid.Just("Выдана"),
		rapid.StringMatching(`[a-z]{3,12}`),
	)
}

// malformedContentGen yields files that cannot decode as an entry
// sequence at all.
func malformedContentGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("]["),
		rapid.Just("[{]"),
		rapid.Just(`[{"id": 1,]`),
		rapid.Just(`{"id": 1}`),
		rapid.Just(`"just a string"`),
		rapid.Just("id: 1\ntitle: broken"),
		rapid.Just(`[1, 2, 3]`),
		rapid.StringMatching(`[^\[\]{}0-9"\s]{10,40}`),
	)
}

// randomBytesGen yields arbitrary file content; Load must survive it
// without panicking whatever it is.
func randomBytesGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		size := rapid.IntRange(10, 100).Draw(t, "size")
		bytes := make([]byte, size)
		for i := range bytes {
			bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
		}
		return string(bytes)
	})
}

// brokenEntryGen yields single entries that must fail validation.
func brokenEntryGen() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{
		`{}`,
		`{"id": 2}`,
		`{"id": 2, "title": "x"}`,
		`{"id": 2, "title": "x", "author": "y", "year": 2000}`,
		`{"id": 2, "title": "x", "author": "y", "year": 2000, "status": "lost"}`,
		`{"id": "2", "title": "x", "author": "y", "year": 2000, "status": "в наличии"}`,
		`{"id": 2, "title": 7, "author": "y", "year": 2000, "status": "в наличии"}`,
		`{"id": 2, "title": "x", "author": "y", "year": 2000.5, "status": "в наличии"}`,
		`{"id": 0, "title": "x", "author": "y", "year": 2000, "status": "в наличии"}`,
		`{"id": 2, "title": "  ", "author": "y", "year": 2000, "status": "в наличии"}`,
	})
}

func mixedEntriesGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		broken := brokenEntryGen().Draw(t, "broken")
		valid := `{"id": 1, "title": "Valid Book", "author": "Author", "year": 2003, "status": "в наличии"}`
		if rapid.Bool().Draw(t, "validFirst") {
			return fmt.Sprintf("[%s, %s]", valid, broken)
		}
		return fmt.Sprintf("[%s, %s]", broken, valid)
	})
}
