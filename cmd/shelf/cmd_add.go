package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"shelf/internal/ui"
)

type AddCmd struct {
	Title  string `arg:"" optional:"" help:"Book title"`
	Author string `arg:"" optional:"" help:"Book author"`
	Year   int    `arg:"" optional:"" help:"Year of publication"`
}

func (cmd *AddCmd) Run(g *Globals) error {
	title := strings.TrimSpace(cmd.Title)
	author := strings.TrimSpace(cmd.Author)
	year := cmd.Year

	interactive := title == "" || author == ""
	if interactive {
		done, err := promptBook(&title, &author, &year)
		if err != nil {
			return err
		}
		if !done {
			return nil
		}
		renderAddSummary(g, title, author, year)
	}

	b, err := g.Cat.Add(title, author, year)
	if err != nil {
		return fmt.Errorf("failed to add book %q: %w", title, err)
	}

	if interactive {
		checks := []string{
			fmt.Sprintf("assigned ID %d", b.ID),
			"saved to catalog",
		}
		fmt.Fprint(g.Out, ui.RenderAdded(b.Title, b.Author, checks))
		return nil
	}

	fmt.Fprintf(g.Out, "Added %q with ID %d.\n", b.Title, b.ID)
	return nil
}

// renderAddSummary echoes the completed form as a collapsed field
// list before the confirmation box.
func renderAddSummary(g *Globals, title, author string, year int) {
	fields := []ui.Field{
		{Label: "Title", Value: title},
		{Label: "Author", Value: author},
		{Label: "Year", Value: strconv.Itoa(year)},
	}
	fmt.Fprint(g.Out, ui.RenderWizard("Add a book", fields, -1))
}

// promptBook collects the book fields interactively when they were not
// all given as arguments. The second return is false when the user
// aborted the form.
func promptBook(title, author *string, year *int) (bool, error) {
	yearStr := ""
	if *year != 0 {
		yearStr = strconv.Itoa(*year)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(title).
				Validate(validateNonEmpty("Title")),
			huh.NewInput().
				Title("Author").
				Value(author).
				Validate(validateNonEmpty("Author")),
			huh.NewInput().
				Title("Year").
				Description("Year of publication").
				Value(&yearStr).
				Validate(validateYear),
		),
	).WithTheme(ui.WizardTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	*title = strings.TrimSpace(*title)
	*author = strings.TrimSpace(*author)
	*year, _ = strconv.Atoi(strings.TrimSpace(yearStr))
	return true, nil
}

func validateNonEmpty(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", label)
		}
		return nil
	}
}

func validateYear(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("Year must be a whole number")
	}
	return nil
}
