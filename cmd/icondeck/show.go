package main

import (
	"fmt"

	"github.com/fwojciec/icondeck"
	"github.com/fwojciec/icondeck/etree"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	icons, _, err := deps.Pipeline.Run(deps.Ctx, deps.Repo, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", icondeck.ErrorMessage(err))
		return err
	}

	for _, icon := range icons {
		if icon.Name != c.Name {
			continue
		}
		if c.Category != "" && icon.Category != c.Category {
			continue
		}

		rawURL := deps.Repo.RawURL(icon.Path)
		fmt.Fprintf(deps.Stdout, "Name:     %s\n", icon.Name)
		fmt.Fprintf(deps.Stdout, "Category: %s\n", icon.Category)
		fmt.Fprintf(deps.Stdout, "Path:     %s\n", icon.Path)
		fmt.Fprintf(deps.Stdout, "Raw URL:  %s\n", rawURL)

		if info, err := etree.NewInspector().Inspect(icon.SVG); err == nil {
			if info.ViewBox != "" {
				fmt.Fprintf(deps.Stdout, "ViewBox:  %s\n", info.ViewBox)
			}
			if info.Title != "" {
				fmt.Fprintf(deps.Stdout, "Title:    %s\n", info.Title)
			}
		}

		fmt.Fprintf(deps.Stdout, "Embed:    %s\n", icondeck.EmbedSnippet(icon, rawURL))

		if c.SVG {
			fmt.Fprintln(deps.Stdout)
			fmt.Fprintln(deps.Stdout, icon.SVG)
		}
		return nil
	}

	err = icondeck.Errorf(icondeck.ENOTFOUND, "Icon not found: %s", c.Name)
	fmt.Fprintf(deps.Stderr, "error: %s\n", icondeck.ErrorMessage(err))
	return err
}
