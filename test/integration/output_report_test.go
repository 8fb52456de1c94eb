package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mutualfundportal/portal/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	report := runExample(t)
	dir := t.TempDir()

	for _, format := range output.AvailableFormatterNames() {
		t.Run(format, func(t *testing.T) {
			data, err := output.Render(report, format)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}

	files, err := output.GenerateReport(report, "all", dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
		assert.Equal(t, dir, filepath.Dir(f))
	}
}

func TestLocalizedConsoleReport(t *testing.T) {
	report := runExample(t)

	data, err := output.Render(report, "inr")
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "₹39,500.00")
	assert.Contains(t, content, "₹10,00,000.00")

	plain, err := output.Render(report, "console")
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(plain), "₹39,500.00"))
}
