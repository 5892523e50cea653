package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nvinuesa/applewarden/internal/grouper"
	"github.com/nvinuesa/applewarden/internal/sources"
)

// resolveSource returns the adapter named by sourceName, or detects one from
// the input header. Undetectable input is read as an Apple export.
func resolveSource(sourceName, inputPath string, logger *log.Logger) (sources.Source, error) {
	registry := sources.DefaultRegistry()

	if sourceName != "" {
		source, ok := registry.Get(sourceName)
		if !ok {
			return nil, fmt.Errorf("unknown source type: %s (available: %s)",
				sourceName, strings.Join(registry.Names(), ", "))
		}
		return source, nil
	}

	detected, err := registry.DetectSource(inputPath)
	if err == nil {
		logger.Debug("auto-detected source", "source", detected.Name())
		return detected, nil
	}
	var missing *sources.ErrFileNotFound
	if errors.As(err, &missing) {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}

	source, ok := registry.Get(sources.AppleName)
	if !ok {
		return nil, fmt.Errorf("could not auto-detect source type for: %s (use --source to specify)", inputPath)
	}
	logger.Debug("could not detect source, falling back", "source", source.Name())
	return source, nil
}

// groupInput reads every row of inputPath and merges them by identity.
func groupInput(sourceName, inputPath string, logger *log.Logger) (*grouper.Grouper, string, error) {
	source, err := resolveSource(sourceName, inputPath, logger)
	if err != nil {
		return nil, "", err
	}

	if err := source.Open(inputPath); err != nil {
		return nil, "", fmt.Errorf("failed to open source: %w", err)
	}
	defer source.Close()

	rows, err := source.Read()
	if err != nil {
		return nil, "", fmt.Errorf("failed to read rows: %w", err)
	}

	g := grouper.Group(rows)

	stats := g.Stats()
	logger.Debug("grouped rows",
		"source", source.Name(),
		"rows", stats.Rows,
		"skipped", stats.Skipped,
		"credentials", stats.Credentials)

	for _, c := range g.Conflicts() {
		logger.Debug("title differs for identity, keeping first",
			"username", c.Identity.Username,
			"kept", c.Kept,
			"ignored", c.Ignored)
	}

	return g, source.Name(), nil
}
