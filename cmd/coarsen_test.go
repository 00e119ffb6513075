package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhowmick22/Simulator/gen/bucket"
)

func TestResolveMapping(t *testing.T) {
	m, err := resolveMapping("4-core", "")
	require.NoError(t, err)
	assert.Equal(t, bucket.Presets["4-core"], m)

	path := writeFile(t, "m.yaml", "levels:\n  \"1\": L\n")
	m, err = resolveMapping("", path)
	require.NoError(t, err)
	assert.Equal(t, bucket.Mapping{"1": "L"}, m)

	_, err = resolveMapping("8-core", "")
	assert.ErrorContains(t, err, "2-core, 4-core")

	_, err = resolveMapping("2-core", path)
	assert.Error(t, err)

	_, err = resolveMapping("", "")
	assert.Error(t, err)
}
