package main

import (
	"io"

	"shelf/cmd/shelf/render"
	"shelf/internal/catalog"
)

type Globals struct {
	Cat    catalog.Catalog
	Out    io.Writer
	Render render.Renderer
	Path   string
}
