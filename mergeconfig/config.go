// Package mergeconfig loads and validates the JSON configuration document
// that drives a merge run.
package mergeconfig

import (
	"strconv"

	json "github.com/segmentio/encoding/json"

	"github.com/erraggy/openapi-merge/internal/options"
	"github.com/erraggy/openapi-merge/oaserrors"
)

// Config is the top-level configuration document.
type Config struct {
	Inputs          []InputConfig `json:"inputs"`
	Output          string        `json:"output"`
	OpenAPIVersion  string        `json:"openapiVersion,omitempty"`
}

// InputConfig is one entry in Config.Inputs: a single input document plus
// the per-input directives that govern how it is folded into the output.
type InputConfig struct {
	InputFile          string              `json:"inputFile,omitempty"`
	InputURL           string              `json:"inputURL,omitempty"`
	PathModification   *PathModification   `json:"pathModification,omitempty"`
	OperationSelection *OperationSelection `json:"operationSelection,omitempty"`
	Description        *DescriptionConfig  `json:"description,omitempty"`
	Dispute            *DisputeConfig      `json:"dispute,omitempty"`
}

// PathModification rewrites every path key of one input before it is
// folded into the output.
type PathModification struct {
	StripStart string `json:"stripStart,omitempty"`
	Prepend    string `json:"prepend,omitempty"`
}

// OperationSelection filters one input's operations by tag.
type OperationSelection struct {
	IncludeTags []string `json:"includeTags,omitempty"`
	ExcludeTags []string `json:"excludeTags,omitempty"`
}

// DescriptionConfig governs whether and how one input's info.description is
// folded into the output's info.description.
type DescriptionConfig struct {
	Append bool   `json:"append,omitempty"`
	Title  string `json:"title,omitempty"`
}

// DisputeConfig is one input's policy for renaming components whose names
// conflict with an earlier input. Exactly one of Prefix or Suffix should be
// set; Validate enforces this.
type DisputeConfig struct {
	Prefix      string `json:"prefix,omitempty"`
	Suffix      string `json:"suffix,omitempty"`
	AlwaysApply bool   `json:"alwaysApply,omitempty"`
}

// Candidate computes the renamed candidate for name under this policy.
func (d *DisputeConfig) Candidate(name string) string {
	if d.Prefix != "" {
		return d.Prefix + name
	}
	return name + d.Suffix
}

// Load reads and validates a configuration document from data.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &oaserrors.ConfigInvalidError{Message: "malformed configuration document", Cause: err}
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg for the required fields and per-input invariants
// the driver relies on: a non-empty input list, exactly one input source
// per input, and a well-formed dispute policy when one is present.
func Validate(cfg *Config) error {
	if len(cfg.Inputs) == 0 {
		return &oaserrors.ConfigInvalidError{Message: "inputs must be non-empty"}
	}
	for i, in := range cfg.Inputs {
		if err := validateInput(i, in); err != nil {
			return err
		}
	}
	return nil
}

func validateInput(index int, in InputConfig) error {
	err := options.ValidateSingleInputSource(
		"exactly one of inputFile or inputURL is required",
		"only one of inputFile or inputURL may be set",
		in.InputFile != "", in.InputURL != "",
	)
	if err != nil {
		return &oaserrors.ConfigInvalidError{
			Message: fmtInputIndex(index) + ": " + err.Error(),
			Cause:   err,
		}
	}
	if in.Dispute != nil {
		hasPrefix := in.Dispute.Prefix != ""
		hasSuffix := in.Dispute.Suffix != ""
		if hasPrefix == hasSuffix {
			return &oaserrors.ConfigInvalidError{
				Message: fmtInputIndex(index) + ": dispute must set exactly one of prefix or suffix",
			}
		}
	}
	return nil
}

func fmtInputIndex(index int) string {
	return "inputs[" + strconv.Itoa(index) + "]"
}
