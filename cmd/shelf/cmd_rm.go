package main

import "fmt"

type RmCmd struct {
	ID int `arg:"" help:"Book ID to remove"`
}

func (cmd *RmCmd) Run(g *Globals) error {
	if err := g.Cat.Remove(cmd.ID); err != nil {
		if handleNotFound(g, err, cmd.ID) {
			return nil
		}
		return fmt.Errorf("failed to remove book %d: %w", cmd.ID, err)
	}

	fmt.Fprintf(g.Out, "Removed book %d.\n", cmd.ID)
	return nil
}
