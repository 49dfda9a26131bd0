package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/icondeck"
	"github.com/fwojciec/icondeck/fs"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	icons, result, err := deps.Pipeline.Run(deps.Ctx, deps.Repo, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", icondeck.ErrorMessage(err))
		return err
	}

	idx := icondeck.BuildIndex(icons, result.RunID, time.Now().UTC())

	if c.Output == "-" {
		data, err := icondeck.EncodeIndex(idx)
		if err != nil {
			return err
		}
		_, err = deps.Stdout.Write(data)
		return err
	}

	store := fs.NewIndexStore(c.Output)
	if err := store.Write(deps.Ctx, idx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", icondeck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s (%d icons, %d dropped)\n", store.Path(), idx.Count, result.Dropped)
	return nil
}
