package ports

import (
	"io"

	"ashby/domain/material"
	"ashby/domain/plot"
	"ashby/domain/table"
)

// TableLoader loads a raw material property table from a file path.
// Implementations own file-format concerns and the mandatory category
// column check.
type TableLoader interface {
	ReadData() (*table.Table, error)
}

// Renderer draws a resolved plot dataset. The series are already
// ordered and colored; the renderer only maps geometry onto the
// output surface and builds the legend from the category palette.
type Renderer interface {
	Render(w io.Writer, series []plot.Series, req plot.Request, legend *material.CategoryColors) error
}
