// Package mergeio resolves one InputConfig's source into a parsed
// *oasmodel.Document: reading a local file or fetching a URL, then decoding
// it with one YAML decoder, which accepts JSON input as well.
package mergeio

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	yaml "go.yaml.in/yaml/v4"

	"github.com/erraggy/openapi-merge/internal/options"
	"github.com/erraggy/openapi-merge/mergeconfig"
	"github.com/erraggy/openapi-merge/mergelog"
	"github.com/erraggy/openapi-merge/oasmodel"
	"github.com/erraggy/openapi-merge/oaserrors"
)

// Option configures a Load call.
type Option func(*loadConfig) error

type loadConfig struct {
	httpClient *http.Client
	logger     mergelog.Logger
}

// WithHTTPClient sets the *http.Client used to fetch URL-sourced inputs.
// If nil or unset, http.DefaultClient is used.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *loadConfig) error {
		if client != nil {
			cfg.httpClient = client
		}
		return nil
	}
}

// WithLogger sets the logger used to report fetch/parse progress.
func WithLogger(l mergelog.Logger) Option {
	return func(cfg *loadConfig) error {
		cfg.logger = l
		return nil
	}
}

func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{
		httpClient: http.DefaultClient,
		logger:     mergelog.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Load resolves index's InputConfig into a parsed oasmodel.Document.
// index is the input's position in the configuration, carried through into
// any InputUnreachable/InputUnparseable error for diagnostics.
func Load(index int, in mergeconfig.InputConfig, opts ...Option) (*oasmodel.Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	if err := options.ValidateSingleInputSource(
		"mergeio: must specify exactly one of inputFile or inputURL",
		"mergeio: must specify exactly one of inputFile or inputURL",
		in.InputFile != "", in.InputURL != "",
	); err != nil {
		return nil, &oaserrors.ConfigInvalidError{Message: err.Error(), Cause: err}
	}

	source := in.InputFile
	if source == "" {
		source = in.InputURL
	}

	cfg.logger.Debug("loading input", "index", index, "source", source)

	data, err := fetch(in, cfg)
	if err != nil {
		return nil, &oaserrors.InputUnreachableError{InputIndex: index, Source: source, Cause: err}
	}

	doc, err := decode(data, source)
	if err != nil {
		return nil, &oaserrors.InputUnparseableError{InputIndex: index, Source: source, Cause: err}
	}

	if !isSupportedVersion(doc.OpenAPI) {
		return nil, &oaserrors.UnsupportedVersionError{Version: doc.OpenAPI}
	}

	return doc, nil
}

func fetch(in mergeconfig.InputConfig, cfg *loadConfig) ([]byte, error) {
	if in.InputFile != "" {
		return os.ReadFile(in.InputFile)
	}
	resp, err := cfg.httpClient.Get(in.InputURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("mergeio: %s: unexpected status %s", in.InputURL, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// decode parses data as YAML 1.2, which is a superset of JSON, so a single
// decoder handles both ".yaml" and ".json" inputs.
func decode(data []byte, source string) (*oasmodel.Document, error) {
	var doc oasmodel.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("mergeio: %s: %w", source, err)
	}
	return &doc, nil
}

func isSupportedVersion(version string) bool {
	return strings.HasPrefix(version, "3.0.")
}
