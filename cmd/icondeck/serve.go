package main

import (
	"fmt"

	"github.com/fwojciec/icondeck"
	"github.com/fwojciec/icondeck/web"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.Addr
	}

	state := web.NewState()

	// Best-effort initial load. The gallery starts either way; the UI shows
	// the no-icons state with a retry button when this fails.
	icons, idx, err := deps.Refresh(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "initial load failed: %s\n", icondeck.ErrorMessage(err))
	} else {
		state.Swap(icons, idx)
		fmt.Fprintf(deps.Stdout, "Loaded %d icons\n", len(icons))
	}

	server := web.NewServer(addr, deps.Repo, state, deps.Refresh, deps.Logger)
	return server.ListenAndServe(deps.Ctx)
}
