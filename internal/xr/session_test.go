package xr

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type floor string

func (f floor) Name() string { return string(f) }

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "active_runtime.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRequestFindsRuntime(t *testing.T) {
	path := writeManifest(t, `{
		"file_format_version": "1.0.0",
		"runtime": {"name": "Monado", "library_path": "/usr/lib/libopenxr_monado.so"}
	}`)
	missing := filepath.Join(t.TempDir(), "none.json")

	p := Request(context.Background(), Options{
		FloorMeshes:   []Floor{floor("ground")},
		ManifestPaths: []string{missing, path},
	})
	s, err := p.Result()
	require.NoError(t, err)
	assert.Equal(t, "Monado", s.Runtime.Name)
	assert.Equal(t, path, s.ManifestPath)
	assert.Equal(t, []string{"ground"}, s.FloorNames())
}

func TestRequestNamesRuntimeFromLibrary(t *testing.T) {
	path := writeManifest(t, `{"runtime": {"library_path": "/opt/xr/libruntime.so"}}`)
	s, err := Request(context.Background(), Options{ManifestPaths: []string{path}}).Result()
	require.NoError(t, err)
	assert.Equal(t, "libruntime.so", s.Runtime.Name)
}

func TestRequestUnsupported(t *testing.T) {
	p := Request(context.Background(), Options{
		ManifestPaths: []string{filepath.Join(t.TempDir(), "none.json")},
	})
	_, err := p.Result()
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestRequestBadManifest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"no library", `{"runtime": {"name": "x"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.body)
			_, err := Request(context.Background(), Options{ManifestPaths: []string{path}}).Result()
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrUnsupported)
		})
	}
}

func TestRequestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := Request(ctx, Options{ManifestPaths: []string{filepath.Join(t.TempDir(), "none.json")}})
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("request did not finish")
	}
	_, err := p.Result()
	// either branch may win the race; both are failures
	assert.Error(t, err)
}

func TestPollNeverBlocks(t *testing.T) {
	p := &Pending{done: make(chan struct{})}
	_, done, _ := p.Poll()
	assert.False(t, done)

	p.err = ErrUnsupported
	close(p.done)
	_, done, err := p.Poll()
	assert.True(t, done)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDefaultManifestPathsHonoursEnv(t *testing.T) {
	t.Setenv("XR_RUNTIME_JSON", "/tmp/custom.json")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	paths := DefaultManifestPaths()
	require.Len(t, paths, 3)
	assert.Equal(t, "/tmp/custom.json", paths[0])
	assert.Equal(t, filepath.Join("/tmp/cfg", "openxr", "1", "active_runtime.json"), paths[1])
}
