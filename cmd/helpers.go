package cmd

import (
	"fmt"

	"github.com/ziadkadry99/quickref/internal/config"
	"github.com/ziadkadry99/quickref/internal/content"
	"github.com/ziadkadry99/quickref/internal/site"
	"github.com/ziadkadry99/quickref/internal/terminal"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `quickref init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadPage returns the content tree named by the config, or the built-in one.
func loadPage(cfg *config.Config) (*content.Page, error) {
	page, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	if cfg.ContentFile != "" {
		logVerbose("Content: %s (%d tabs, %d sections)", cfg.ContentFile, len(page.Tabs), page.SectionCount())
	} else {
		logVerbose("Content: built-in (%d tabs, %d sections)", len(page.Tabs), page.SectionCount())
	}
	return page, nil
}

// loadRenderer loads config and content and builds the HTML renderer.
func loadRenderer() (*config.Config, *site.Renderer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	page, err := loadPage(cfg)
	if err != nil {
		return nil, nil, err
	}
	renderer, err := site.NewRenderer(page, site.WithHighlightStyle(cfg.HighlightStyle))
	if err != nil {
		return nil, nil, fmt.Errorf("building renderer: %w", err)
	}
	return cfg, renderer, nil
}

// terminalOptions maps the terminal config section onto renderer options.
func terminalOptions(cfg *config.Config) terminal.Options {
	return terminal.Options{
		Style:    cfg.Terminal.Style,
		WordWrap: cfg.Terminal.WordWrap,
	}
}
