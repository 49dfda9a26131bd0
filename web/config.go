package web

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/icondeck"
)

// Config defines the inputs for the gallery web server. Values come from
// the environment; CLI flags override them at wiring time.
type Config struct {
	Addr       string `env:"ICONDECK_ADDR" envDefault:":8433"`
	RepoOwner  string `env:"ICONDECK_REPO_OWNER"`
	RepoName   string `env:"ICONDECK_REPO_NAME"`
	RepoBranch string `env:"ICONDECK_REPO_BRANCH"`
	Folders    string `env:"ICONDECK_FOLDERS"`
	BaseURL    string `env:"ICONDECK_BASE_URL"`
}

// ParseConfig loads configuration from environment variables.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, icondeck.Errorf(icondeck.EINVALID, "Invalid environment configuration: %v", err)
	}
	return cfg, nil
}

// Repo builds the repository coordinates the config describes.
func (c Config) Repo() icondeck.Repo {
	repo := icondeck.Repo{
		Owner:   c.RepoOwner,
		Name:    c.RepoName,
		Branch:  c.RepoBranch,
		BaseURL: c.BaseURL,
	}
	if c.Folders != "" {
		for _, folder := range strings.Split(c.Folders, ",") {
			if folder = strings.TrimSpace(folder); folder != "" {
				repo.Folders = append(repo.Folders, folder)
			}
		}
	}
	return repo
}
