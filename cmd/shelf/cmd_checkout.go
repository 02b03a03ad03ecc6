package main

import (
	"fmt"

	"shelf/internal/catalog"
)

type CheckoutCmd struct {
	ID int `arg:"" help:"Book ID to check out"`
}

func (cmd *CheckoutCmd) Run(g *Globals) error {
	return setStatus(g, cmd.ID, catalog.StatusCheckedOut)
}

type ReturnCmd struct {
	ID int `arg:"" help:"Book ID to return"`
}

func (cmd *ReturnCmd) Run(g *Globals) error {
	return setStatus(g, cmd.ID, catalog.StatusAvailable)
}

func setStatus(g *Globals, id int, status catalog.Status) error {
	if err := g.Cat.UpdateStatus(id, status); err != nil {
		if handleNotFound(g, err, id) {
			return nil
		}
		return fmt.Errorf("failed to update book %d: %w", id, err)
	}

	fmt.Fprintf(g.Out, "Book %d is now %s.\n", id, statusLabel(status))
	return nil
}
