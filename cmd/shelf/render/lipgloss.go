package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	idStyle         lipgloss.Style
	titleStyle      lipgloss.Style
	authorStyle     lipgloss.Style
	yearStyle       lipgloss.Style
	availableStyle  lipgloss.Style
	checkedOutStyle lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:           width,
		r:               r,
		idStyle:         r.NewStyle().Faint(true),
		titleStyle:      r.NewStyle().Bold(true),
		authorStyle:     r.NewStyle(),
		yearStyle:       r.NewStyle().Faint(true),
		availableStyle:  r.NewStyle().Foreground(lipgloss.Color("10")),
		checkedOutStyle: r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderBookList(view BookListView) string {
	if view.IsEmpty() {
		return "Catalog is empty.\n"
	}

	var sb strings.Builder
	for i, item := range view.Items {
		last := i == len(view.Items)-1
		sb.WriteString(r.renderItem(item, last))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item BookListItem, last bool) string {
	head := r.idStyle.Render(fmt.Sprintf("#%d", item.ID)) + " " + r.titleStyle.Render(item.Title)
	year := r.yearStyle.Render(strconv.Itoa(item.Year))

	padding := max(1, r.width-lipgloss.Width(head)-lipgloss.Width(year))
	headerLine := head + strings.Repeat(" ", padding) + year

	status := r.availableStyle.Render("   available")
	if item.CheckedOut {
		status = r.checkedOutStyle.Render("   checked out")
	}

	lines := []string{
		headerLine,
		r.authorStyle.Render("   " + item.Author),
		status,
	}
	if !last {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
