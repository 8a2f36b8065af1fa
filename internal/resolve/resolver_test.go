package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addFile(t *testing.T, root string, segments ...string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, segments...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestResolveExactPath(t *testing.T) {
	root := t.TempDir()
	addFile(t, root, "Jane Shepard", "Greatest Hits", "03 Run Fast.mp3")

	r := New(root, false)
	got, err := r.Resolve([]string{"Jane Shepard", "Greatest Hits", "03 Run Fast.mp3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Shepard", "Greatest Hits", "03 Run Fast.mp3"}, got)
}

func TestResolveCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	addFile(t, root, "jane shepard", "greatest hits", "03 Run Fast.mp3")

	r := New(root, false)
	got, err := r.Resolve([]string{"Jane Shepard", "Greatest Hits", "03 Run Fast.mp3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"jane shepard", "greatest hits", "03 Run Fast.mp3"}, got)
}

func TestResolveContainsMatch(t *testing.T) {
	root := t.TempDir()
	addFile(t, root, "Jane Shepard", "Greatest Hits (Remastered)", "03 Run Fast.mp3")

	tests := []struct {
		name     string
		contains bool
		wantErr  bool
	}{
		{"contains enabled", true, false},
		{"contains disabled", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(root, tt.contains)
			got, err := r.Resolve([]string{"Jane Shepard", "Greatest Hits", "03 Run Fast.mp3"})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Greatest Hits (Remastered)", got[1])
		})
	}
}

func TestResolveExactBeatsContains(t *testing.T) {
	root := t.TempDir()
	addFile(t, root, "Jane Shepard", "greatest hits", "03 Run Fast.mp3")
	addFile(t, root, "Jane Shepard", "Greatest Hits (Remastered)", "04 Other.mp3")

	r := New(root, true)
	got, err := r.Resolve([]string{"Jane Shepard", "Greatest Hits", "03 Run Fast.mp3"})
	require.NoError(t, err)
	assert.Equal(t, "greatest hits", got[1])
}

func TestResolveNotFound(t *testing.T) {
	root := t.TempDir()
	addFile(t, root, "Jane Shepard", "Greatest Hits", "03 Run Fast.mp3")

	r := New(root, true)
	_, err := r.Resolve([]string{"Nobody", "Nothing", "00 Nope.mp3"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveFuzzyFileName(t *testing.T) {
	root := t.TempDir()
	addFile(t, root, "Jane Shepard", "Greatest Hits", "03 run fast.mp3")

	r := New(root, false)
	got, err := r.Resolve([]string{"Jane Shepard", "Greatest Hits", "03 Run Fast.mp3"})
	require.NoError(t, err)
	assert.Equal(t, "03 run fast.mp3", got[2])
}
