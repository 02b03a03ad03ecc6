package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"shelf/internal/catalog"
	"shelf/internal/config"
	"shelf/internal/ui"
)

// MenuCmd is the interactive loop: pick an action, run it, repeat
// until Quit.
type MenuCmd struct{}

type menuChoice int

const (
	menuAdd menuChoice = iota
	menuRemove
	menuSearch
	menuList
	menuStatus
	menuQuit
)

func (cmd *MenuCmd) Run(g *Globals) error {
	for {
		choice, err := promptChoice(g)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if choice == menuQuit {
			return nil
		}

		if err := cmd.dispatch(g, choice); err != nil {
			fmt.Fprintf(g.Out, "Error: %v\n", err)
		}
	}
}

func promptChoice(g *Globals) (menuChoice, error) {
	title := "Catalog"
	if g.Path != "" {
		title += " · " + config.ShortenPath(g.Path)
	}

	var choice menuChoice
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[menuChoice]().
			Title(title).
			Options(
				huh.NewOption("Add a book", menuAdd),
				huh.NewOption("Remove a book", menuRemove),
				huh.NewOption("Search books", menuSearch),
				huh.NewOption("List all books", menuList),
				huh.NewOption("Update book status", menuStatus),
				huh.NewOption("Quit", menuQuit),
			).
			Value(&choice),
	)).WithTheme(ui.WizardTheme())

	if err := form.Run(); err != nil {
		return menuQuit, err
	}
	return choice, nil
}

func (cmd *MenuCmd) dispatch(g *Globals, choice menuChoice) error {
	switch choice {
	case menuAdd:
		return (&AddCmd{}).Run(g)
	case menuRemove:
		id, ok, err := promptID("Book ID to remove")
		if err != nil || !ok {
			return err
		}
		return (&RmCmd{ID: id}).Run(g)
	case menuSearch:
		keyword, ok, err := promptKeyword()
		if err != nil || !ok {
			return err
		}
		return (&SearchCmd{Keyword: keyword}).Run(g)
	case menuList:
		return (&ListCmd{}).Run(g)
	case menuStatus:
		return promptStatusUpdate(g)
	}
	return nil
}

func promptID(title string) (int, bool, error) {
	var raw string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Value(&raw).
			Validate(validateID),
	)).WithTheme(ui.WizardTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, false, nil
		}
		return 0, false, err
	}

	id, _ := strconv.Atoi(strings.TrimSpace(raw))
	return id, true, nil
}

func validateID(s string) error {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return errors.New("ID must be a positive whole number")
	}
	return nil
}

func promptKeyword() (string, bool, error) {
	var keyword string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Search keyword").
			Description("Title or author substring, or an exact year").
			Value(&keyword),
	)).WithTheme(ui.WizardTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, err
	}
	return keyword, true, nil
}

func promptStatusUpdate(g *Globals) error {
	id, ok, err := promptID("Book ID")
	if err != nil || !ok {
		return err
	}

	var status catalog.Status
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[catalog.Status]().
			Title("New status").
			Options(
				huh.NewOption("available", catalog.StatusAvailable),
				huh.NewOption("checked out", catalog.StatusCheckedOut),
			).
			Value(&status),
	)).WithTheme(ui.WizardTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	return setStatus(g, id, status)
}
