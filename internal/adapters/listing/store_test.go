package listing_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libscan/internal/adapters/listing"
	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listing.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadMap(t *testing.T) {
	path := writeFile(t, `apps/visual/cam/main.py: numpy, cv2.imgproc,requests

apps/visual/cam/util.py:
  apps/visual/cam/io.py: serial
apps/visual/cam/main.py: picamera
`)

	m, err := listing.NewStore().ReadMap(path)
	require.NoError(t, err)

	assert.Equal(t, domain.ImportMap{
		"apps/visual/cam/main.py": {"picamera"},
		"apps/visual/cam/util.py": {},
		"apps/visual/cam/io.py":   {"serial"},
	}, m)
}

func TestReadMap_Malformed(t *testing.T) {
	path := writeFile(t, "a/main.py: os\nno separator here\n")

	_, err := listing.NewStore().ReadMap(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrListingMalformed)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, 2, zErr.Metadata()["line"])
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestReadMap_Missing(t *testing.T) {
	_, err := listing.NewStore().ReadMap(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrListingReadFailed)
}

func TestReadList(t *testing.T) {
	path := writeFile(t, "apps/visual/cam\n\n  apps/visual/door  \napps/visual/tool.py\n")

	got, err := listing.NewStore().ReadList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"apps/visual/cam", "apps/visual/door", "apps/visual/tool.py"}, got)
}

func TestWriteMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "visual-app-imports.txt")
	records := []domain.Record{
		{Key: "apps/visual/cam", Values: []string{"numpy", "cv2", "RPi.GPIO"}},
		{Key: "apps/visual/empty"},
		{Key: "apps/visual/tool.py", Values: []string{"requests"}},
	}

	s := listing.NewStore()
	require.NoError(t, s.WriteMap(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "write_map", data)

	back, err := s.ReadMap(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"numpy", "cv2", "RPi.GPIO"}, back["apps/visual/cam"])
	assert.Empty(t, back["apps/visual/empty"])
}
