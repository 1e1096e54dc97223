package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/vikor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Table(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-problem", "testdata/reference.yaml"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "v = 0.50")
	assert.Contains(t, out, "RANK")
	assert.Contains(t, out, "compromise set:")
	for _, label := range []string{"A1", "A2", "A3", "A4", "A5"} {
		assert.Contains(t, out, label)
	}
}

func TestRun_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-problem", "testdata/reference.yaml", "-format", "json"}, &stdout, &stderr)
	require.NoError(t, err)

	var res vikor.Results
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))

	assert.Len(t, res.RankedByQ, 5)
	assert.Len(t, res.AggregatedWeights, 4)
	assert.InDelta(t, 0.25, res.Compromise.Threshold, 1e-12)
	assert.NotEmpty(t, res.Compromise.Set)
	assert.Equal(t, res.RankedByQ[0], res.Compromise.Set[0])
	assert.Empty(t, res.Diagnostics)
}

func TestRun_UsageErrors(t *testing.T) {
	usageRequest := func(args []string) func(t *testing.T) {
		return func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			err := run(args, &stdout, &stderr)

			assert.ErrorIs(t, err, errUsage)
			assert.Contains(t, stderr.String(), "Usage: vikorctl")
			assert.Empty(t, stdout.String())
		}
	}

	t.Run("missing_problem", usageRequest(nil))
	t.Run("unknown_format", usageRequest([]string{"-problem", "testdata/reference.yaml", "-format", "xml"}))
	t.Run("unknown_flag", usageRequest([]string{"-nope"}))
}

func TestRun_MissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-problem", "testdata/missing.yaml"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load problem")
}
