package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/icondeck"
	"github.com/fwojciec/icondeck/discover"
	"github.com/fwojciec/icondeck/web"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Repo     icondeck.Repo
	Config   web.Config
	Logger   *slog.Logger
	Pipeline *discover.Pipeline
	Refresh  web.RefreshFunc
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Owner   string   `help:"Repository owner" env:"ICONDECK_REPO_OWNER"`
	Repo    string   `help:"Repository name" env:"ICONDECK_REPO_NAME"`
	Branch  string   `help:"Repository branch" env:"ICONDECK_REPO_BRANCH"`
	Folders []string `help:"Icon folders to scan (repeatable)"`
	BaseURL string   `name:"base-url" help:"Serve icons from this base URL instead of repository coordinates"`
	Verbose bool     `short:"v" help:"Enable debug logging"`

	Serve ServeCmd `cmd:"" help:"Serve the icon gallery web UI"`
	List  ListCmd  `cmd:"" help:"Discover icons and list them"`
	Index IndexCmd `cmd:"" help:"Discover icons and write an index manifest"`
	Show  ShowCmd  `cmd:"" help:"Show details for a single icon"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address" default:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `short:"c" help:"Only list icons in this category"`
	Query    string `short:"q" help:"Only list icons matching this text"`
	JSON     bool   `help:"Print icons as JSON"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Output string `short:"o" default:"." help:"File or directory to write the manifest to, or - for stdout"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name     string `arg:"" help:"Icon name"`
	Category string `short:"c" help:"Disambiguate when the name exists in several categories"`
	SVG      bool   `help:"Print the raw SVG markup"`
}
