package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSources(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses sensors and locations", func(t *testing.T) {
		path := writeSources(t, `
sensors:
  - 1884
  - 2178
locations:
  - 1102
datetime_from: "2023-01-01"
datetime_to: "2023-12-31"
`)
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []int{1884, 2178}, s.Sensors)
		assert.Equal(t, []int{1102}, s.Locations)
		assert.Equal(t, "2023-01-01", s.DatetimeFrom)
	})

	t.Run("rejects empty lists", func(t *testing.T) {
		path := writeSources(t, "sensors: []\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no sensors or locations")
	})

	t.Run("rejects non-positive ids", func(t *testing.T) {
		path := writeSources(t, "sensors: [0]\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeSources(t, "sensors: [1884")
		_, err := Load(path)
		require.Error(t, err)
	})
}
