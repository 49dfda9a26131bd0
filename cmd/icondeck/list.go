package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/icondeck"
	"github.com/fwojciec/icondeck/discover"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	icons, result, err := deps.Pipeline.Run(deps.Ctx, deps.Repo, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", icondeck.ErrorMessage(err))
		return err
	}

	icons = icondeck.FilterIcons(icons, icondeck.Filter{Query: c.Query, Category: c.Category})

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(icons)
	}

	if len(icons) == 0 {
		fmt.Fprintln(deps.Stdout, "No icons found.")
		return nil
	}

	for _, icon := range icons {
		fmt.Fprintf(deps.Stdout, "%-30s %-20s %s\n", icon.Name, icon.Category, icon.Path)
	}
	fmt.Fprintf(deps.Stdout, "\n%d icons (%s via %s)\n", len(icons), discover.FormatBytes(result.Bytes), result.Strategy)

	return nil
}
