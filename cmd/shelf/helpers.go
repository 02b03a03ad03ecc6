package main

import (
	"errors"
	"fmt"

	"shelf/internal/catalog"
)

func statusLabel(s catalog.Status) string {
	if s == catalog.StatusCheckedOut {
		return "checked out"
	}
	return "available"
}

// handleNotFound turns the not-found outcome into a message instead of
// a fatal error: operating on a missing ID is a reported no-op.
func handleNotFound(g *Globals, err error, id int) bool {
	if errors.Is(err, catalog.ErrNotFound) {
		fmt.Fprintf(g.Out, "No book with ID %d.\n", id)
		return true
	}
	return false
}
