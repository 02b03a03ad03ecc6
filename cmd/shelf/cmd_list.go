package main

import (
	"fmt"
	"text/tabwriter"

	"shelf/cmd/shelf/render"
	"shelf/internal/catalog"
	"shelf/internal/util"
)

type ListCmd struct {
	Plain bool `help:"Plain table output without styling"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	books := g.Cat.List()

	if cmd.Plain {
		return printBookTable(g, books)
	}

	view := render.BookListView{Items: make([]render.BookListItem, len(books))}
	for i, b := range books {
		view.Items[i] = render.BookListItem{
			ID:         b.ID,
			Title:      b.Title,
			Author:     b.Author,
			Year:       b.Year,
			CheckedOut: b.Status == catalog.StatusCheckedOut,
		}
	}

	assert.Success(fmt.Fprint(g.Out, g.Render.RenderBookList(view)))
	return nil
}

func printBookTable(g *Globals, books []catalog.Book) error {
	if len(books) == 0 {
		fmt.Fprintln(g.Out, "Catalog is empty.")
		return nil
	}

	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tYEAR\tSTATUS")
	fmt.Fprintln(w, "--\t-----\t------\t----\t------")

	for _, b := range books {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			b.ID, b.Title, b.Author, b.Year, statusLabel(b.Status))
	}

	return w.Flush()
}
