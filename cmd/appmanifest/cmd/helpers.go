package cmd

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/echat-app/appmanifest/cmd/appmanifest/internal/config"
	"github.com/echat-app/appmanifest/cmd/appmanifest/internal/manifest"
)

// loadInputs combines the configured input sources.
func loadInputs() (config.InputSet, error) {
	dir := projectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.InputSet{}, err
		}
		dir = wd
	}

	inputs, err := config.Load(config.Sources{
		Dir:        dir,
		ConfigFile: configFile,
		EnvFile:    envFile,
		Lookup:     lookupEnv,
	})
	if err != nil {
		return config.InputSet{}, err
	}

	logger.Debug("loaded inputs", zap.String("dir", dir), zap.Strings("present", inputs.Names()))
	return inputs, nil
}

// assemble loads the inputs and builds the manifest.
func assemble() (*manifest.Manifest, error) {
	inputs, err := loadInputs()
	if err != nil {
		return nil, err
	}

	resolved, err := config.Resolve(inputs)
	if err != nil {
		return nil, err
	}

	included := manifest.Included(resolved)
	for _, name := range slices.Sorted(maps.Keys(included)) {
		logger.Debug("section", zap.String("name", name), zap.Bool("included", included[name]))
	}

	return manifest.Build(resolved), nil
}

// writeOutput renders with fn and writes the result to path, or to the
// command's stdout when path is empty. Nothing is written if fn fails.
func writeOutput(cmd *cobra.Command, path string, fn func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	if path == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("wrote output", zap.String("path", path), zap.Int("bytes", buf.Len()))
	return nil
}
