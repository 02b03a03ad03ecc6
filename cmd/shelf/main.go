package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"shelf/cmd/shelf/render"
	"shelf/internal/catalog"
	"shelf/internal/config"
)

type CLI struct {
	Add      AddCmd      `cmd:"" aliases:"a" help:"Add a book to the catalog"`
	List     ListCmd     `cmd:"" aliases:"ls" help:"List all books"`
	Rm       RmCmd       `cmd:"" help:"Remove a book by ID"`
	Search   SearchCmd   `cmd:"" aliases:"s" help:"Search books by title, author or exact year"`
	Show     ShowCmd     `cmd:"" help:"Show book details"`
	Checkout CheckoutCmd `cmd:"" help:"Mark a book as checked out"`
	Return   ReturnCmd   `cmd:"" help:"Mark a book as available again"`
	Menu     MenuCmd     `cmd:"" aliases:"m" help:"Interactive menu"`

	File    string `name:"file" short:"f" help:"Path to the catalog file"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	path := c.File
	if path == "" {
		path = config.DefaultCatalogPath()
	} else {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return fmt.Errorf("invalid catalog path: %w", err)
		}
		path = expanded
	}

	cat, err := catalog.NewFileCatalog(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}
	cat = cat.WithLogger(newLogger(c.Verbose))
	if err := cat.Load(); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	globals := &Globals{
		Cat:    cat,
		Out:    os.Stdout,
		Render: render.NewLipglossRendererAuto(os.Stdout),
		Path:   path,
	}
	ctx.Bind(globals)
	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("shelf"),
		kong.Description("Home library catalog manager"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
