package main

import "fmt"

type SearchCmd struct {
	Keyword string `arg:"" help:"Title or author substring, or an exact year"`
}

func (cmd *SearchCmd) Run(g *Globals) error { //nolint:unparam // error required by kong interface
	books := g.Cat.Search(cmd.Keyword)

	if len(books) == 0 {
		fmt.Fprintln(g.Out, "No books found.")
		return nil
	}

	for _, b := range books {
		fmt.Fprintf(g.Out, "#%d  %s by %s (%d)  %s\n",
			b.ID, b.Title, b.Author, b.Year, statusLabel(b.Status))
	}
	return nil
}
