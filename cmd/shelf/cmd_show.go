package main

import "fmt"

type ShowCmd struct {
	ID int `arg:"" help:"Book ID"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	b, err := g.Cat.Get(cmd.ID)
	if err != nil {
		if handleNotFound(g, err, cmd.ID) {
			return nil
		}
		return err
	}

	fmt.Fprintf(g.Out, "ID:     %d\n", b.ID)
	fmt.Fprintf(g.Out, "Title:  %s\n", b.Title)
	fmt.Fprintf(g.Out, "Author: %s\n", b.Author)
	fmt.Fprintf(g.Out, "Year:   %d\n", b.Year)
	fmt.Fprintf(g.Out, "Status: %s\n", statusLabel(b.Status))
	return nil
}
