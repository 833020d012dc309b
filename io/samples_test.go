package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSamples(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "samples.txt")
	body := "0 10 0\n" +
		"1 20 1\n" +
		"2 30 0\n" +
		"3 40 1\n"
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))

	xs, ys, err := ReadSamples(fname, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, xs)
	assert.Equal(t, []float64{0, 1, 0, 1}, ys)

	xs, ys, err = ReadSamples(fname, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 40}, xs)
	assert.Equal(t, []float64{0, 1, 2, 3}, ys)
}

func TestReadSamplesMissingFile(t *testing.T) {
	_, _, err := ReadSamples(filepath.Join(t.TempDir(), "none.txt"), 0, 1)
	assert.Error(t, err)
}
