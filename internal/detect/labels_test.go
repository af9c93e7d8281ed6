package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLabels(t *testing.T) {
	labels := DefaultLabels()

	assert.Equal(t, 80, labels.Count())
	assert.Equal(t, "person", labels.LabelFor(0))
	assert.Equal(t, "car", labels.LabelFor(2))
	assert.Equal(t, "toothbrush", labels.LabelFor(79))
}

func TestLabelForOutOfRange(t *testing.T) {
	labels := DefaultLabels()

	assert.Equal(t, "class_80", labels.LabelFor(80))
	assert.Equal(t, "class_-1", labels.LabelFor(-1))
}

func TestLoadLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ndog\nbird\n"), 0644))

	labels, err := LoadLabels(path)
	require.NoError(t, err)

	assert.Equal(t, 3, labels.Count())
	assert.Equal(t, "cat", labels.LabelFor(0))
	assert.Equal(t, "bird", labels.LabelFor(2))
	assert.Equal(t, "class_3", labels.LabelFor(3))
}

func TestLoadLabelsMissingFile(t *testing.T) {
	_, err := LoadLabels(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
