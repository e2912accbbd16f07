package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/segmentio/encoding/json"
	yaml "go.yaml.in/yaml/v4"

	"github.com/erraggy/openapi-merge/internal/pathutil"
	"github.com/erraggy/openapi-merge/merge"
	"github.com/erraggy/openapi-merge/mergeconfig"
	"github.com/erraggy/openapi-merge/mergelog"
	"github.com/erraggy/openapi-merge/mergeio"
	"github.com/erraggy/openapi-merge/oasmodel"
	"github.com/erraggy/openapi-merge/oaserrors"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(oaserrors.ExitCode(err))
	}
}

type cliFlags struct {
	config  string
	verbose bool
}

func setupFlags() (*flag.FlagSet, *cliFlags) {
	fs := flag.NewFlagSet("openapi-merge", flag.ContinueOnError)
	flags := &cliFlags{}

	fs.StringVar(&flags.config, "config", "./openapi-merge.json", "path to the merge configuration file")
	fs.BoolVar(&flags.verbose, "verbose", false, "emit debug-level logging to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: openapi-merge [flags]\n\n")
		_, _ = fmt.Fprintf(output, "Merge multiple OpenAPI 3.0 documents into one, per a JSON configuration file.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  openapi-merge\n")
		_, _ = fmt.Fprintf(output, "  openapi-merge --config ./config/openapi-merge.json\n")
	}

	return fs, flags
}

func run(args []string) error {
	fs, flags := setupFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := mergelog.NewSlogAdapter(slog.New(handler))

	startTime := time.Now()

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}

	inputs := make([]*oasmodel.Document, len(cfg.Inputs))
	for i, in := range cfg.Inputs {
		doc, err := mergeio.Load(i, in, mergeio.WithLogger(logger))
		if err != nil {
			return err
		}
		inputs[i] = doc
	}

	merged, err := merge.Merge(cfg, inputs, logger)
	if err != nil {
		return err
	}

	if err := writeOutput(cfg.Output, merged); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	logger.Info("merge completed",
		"inputs", len(cfg.Inputs),
		"paths", merged.Paths.Len(),
		"output", cfg.Output,
		"elapsed", time.Since(startTime),
	)
	return nil
}

func loadConfig(path string) (*mergeconfig.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ConfigInvalidError{Message: fmt.Sprintf("reading config %s", path), Cause: err}
	}
	return mergeconfig.Load(data)
}

// writeOutput encodes doc according to output's extension: YAML for
// ".yaml"/".yml", JSON otherwise, matching the teacher's format-dispatch
// idiom for its own convert/join output writers.
func writeOutput(output string, doc *oasmodel.Document) error {
	safePath, err := pathutil.SanitizeOutputPath(output)
	if err != nil {
		return err
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(output)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(safePath, data, 0o600)
}
