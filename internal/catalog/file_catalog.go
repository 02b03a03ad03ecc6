package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type codec struct {
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

var (
	jsonCodec = codec{
		marshal: func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "    ")
		},
		unmarshal: json.Unmarshal,
	}
	yamlCodec = codec{
		marshal:   yaml.Marshal,
		unmarshal: yaml.Unmarshal,
	}
)

// codecFor picks the entry encoding from the file extension. JSON is
// the default and the original wire format; .yaml/.yml selects YAML
// with the same field names.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec
	default:
		return jsonCodec
	}
}

// FileCatalog keeps books in insertion order, which is also display
// order, and writes the whole collection through to its file on every
// mutation. The mutex guards accidental concurrent use within one
// process; concurrent processes on the same file are out of scope.
type FileCatalog struct {
	path   string
	codec  codec
	log    zerolog.Logger
	mu     sync.Mutex
	books  []Book
	lastID int
}

func NewFileCatalog(path string) (*FileCatalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	return &FileCatalog{
		path:  path,
		codec: codecFor(path),
		log:   zerolog.Nop(),
	}, nil
}

// WithLogger routes load diagnostics (skipped entries, unparseable
// files) through log instead of discarding them.
func (c *FileCatalog) WithLogger(log zerolog.Logger) *FileCatalog {
	c.log = log
	return c
}

// Load reads the backing file. A missing file is a first run, not an
// error. An unparseable file yields an empty catalog for this session;
// the file itself is left untouched. Entries failing validation are
// skipped with a diagnostic, valid ones keep their file order.
func (c *FileCatalog) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		c.books = nil
		c.lastID = 0
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var entries []map[string]any
	if err := c.codec.unmarshal(data, &entries); err != nil {
		c.log.Warn().Err(err).Str("path", c.path).
			Msg("catalog file is not parseable, starting with an empty catalog")
		c.books = nil
		c.lastID = 0
		return nil
	}

	books := make([]Book, 0, len(entries))
	seen := make(map[int]bool, len(entries))
	for i, entry := range entries {
		if err := ValidateEntry(entry); err != nil {
			c.log.Warn().Err(err).Int("entry", i).Interface("data", entry).
				Msg("skipping malformed book entry")
			continue
		}
		b := BookFromEntry(entry)
		if seen[b.ID] {
			c.log.Warn().Int("entry", i).Int("id", b.ID).
				Msg("skipping book entry with duplicate id")
			continue
		}
		seen[b.ID] = true
		books = append(books, b)
	}

	c.books = books
	c.lastID = maxID(books)
	c.log.Debug().Int("books", len(books)).Str("path", c.path).Msg("catalog loaded")
	return nil
}

func (c *FileCatalog) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked()
}

// saveLocked overwrites the file in place. There is deliberately no
// temp-file swap: a crash mid-write can truncate the file. Known
// limitation of the single-user, single-file design.
func (c *FileCatalog) saveLocked() error {
	entries := make([]map[string]any, 0, len(c.books))
	for _, b := range c.books {
		entries = append(entries, b.Entry())
	}

	data, err := c.codec.marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

// Add assigns the next ID, appends the book with status Available and
// persists. IDs grow strictly within a session, so removing the
// highest book never hands its ID to the next Add.
func (c *FileCatalog) Add(title, author string, year int) (Book, error) {
	if strings.TrimSpace(title) == "" {
		return Book{}, ErrEmptyTitle
	}
	if strings.TrimSpace(author) == "" {
		return Book{}, ErrEmptyAuthor
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if m := maxID(c.books); m > c.lastID {
		c.lastID = m
	}
	c.lastID++

	b := Book{
		ID:     c.lastID,
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusAvailable,
	}
	c.books = append(c.books, b)

	if err := c.saveLocked(); err != nil {
		return b, err
	}
	return b, nil
}

func (c *FileCatalog) Get(id int) (Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return Book{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return c.books[idx], nil
}

func (c *FileCatalog) Remove(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	c.books = slices.Delete(c.books, idx, idx+1)
	return c.saveLocked()
}

// UpdateStatus mutates only the status field of the matching book.
// The status is checked before anything changes, so an invalid value
// leaves both memory and file untouched.
func (c *FileCatalog) UpdateStatus(id int, status Status) error {
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	c.books[idx].Status = status
	return c.saveLocked()
}

// Search matches keyword case-insensitively as a substring of title or
// author, or exactly against the decimal form of the year. Results
// keep collection order; an empty result is a valid outcome.
func (c *FileCatalog) Search(keyword string) []Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	var results []Book
	for _, b := range c.books {
		if matchesKeyword(b, keyword) {
			results = append(results, b)
		}
	}
	return results
}

func (c *FileCatalog) List() []Book {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.books)
}

func (c *FileCatalog) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.books)
}

func (c *FileCatalog) indexLocked(id int) int {
	return slices.IndexFunc(c.books, func(b Book) bool { return b.ID == id })
}

func maxID(books []Book) int {
	m := 0
	for _, b := range books {
		if b.ID > m {
			m = b.ID
		}
	}
	return m
}
