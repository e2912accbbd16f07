package mergeconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/openapi-merge/oaserrors"
)

func TestLoadValid(t *testing.T) {
	data := []byte(`{
		"inputs": [
			{"inputFile": "a.yaml"},
			{"inputURL": "https://example.com/b.yaml", "dispute": {"prefix": "B"}}
		],
		"output": "merged.yaml"
	}`)
	cfg, err := Load(data)
	require.NoError(t, err)
	assert.Len(t, cfg.Inputs, 2)
	assert.Equal(t, "a.yaml", cfg.Inputs[0].InputFile)
	assert.Equal(t, "B", cfg.Inputs[1].Dispute.Prefix)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load([]byte(`{not json`))
	var configErr *oaserrors.ConfigInvalidError
	require.ErrorAs(t, err, &configErr)
}

func TestLoadEmptyInputs(t *testing.T) {
	_, err := Load([]byte(`{"inputs": []}`))
	require.Error(t, err)
}

func TestValidateRequiresExactlyOneSource(t *testing.T) {
	cfg := &Config{Inputs: []InputConfig{{}}}
	err := Validate(cfg)
	require.Error(t, err)

	cfg = &Config{Inputs: []InputConfig{{InputFile: "a.yaml", InputURL: "https://x"}}}
	err = Validate(cfg)
	require.Error(t, err)
}

func TestValidateDisputeExactlyOne(t *testing.T) {
	cfg := &Config{Inputs: []InputConfig{{InputFile: "a.yaml", Dispute: &DisputeConfig{}}}}
	require.Error(t, Validate(cfg))

	cfg = &Config{Inputs: []InputConfig{{InputFile: "a.yaml", Dispute: &DisputeConfig{Prefix: "A", Suffix: "B"}}}}
	require.Error(t, Validate(cfg))

	cfg = &Config{Inputs: []InputConfig{{InputFile: "a.yaml", Dispute: &DisputeConfig{Prefix: "A"}}}}
	require.NoError(t, Validate(cfg))
}

func TestDisputeCandidate(t *testing.T) {
	prefix := &DisputeConfig{Prefix: "B"}
	assert.Equal(t, "BError", prefix.Candidate("Error"))

	suffix := &DisputeConfig{Suffix: "V2"}
	assert.Equal(t, "ErrorV2", suffix.Candidate("Error"))
}
