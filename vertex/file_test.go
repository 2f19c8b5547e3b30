package vertex

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cube(p float32) float32 { return p*p*p - 0.3333*p + 16.25 }

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "-2 4 0 1 1 1", FormatLine(New(mgl32.Vec3{-2, 4, 0}, White)))
	assert.Equal(t, "0.1 -1.5e+10 3.25 0 0.5 1", FormatLine(New(mgl32.Vec3{0.1, -1.5e10, 3.25}, mgl32.Vec3{0, 0.5, 1})))
}

func TestParseLineErrors(t *testing.T) {
	for _, line := range []string{
		"1 2 3 4 5",
		"1 2 3 4 5 6 7",
		"1 2 x 4 5 6",
	} {
		_, err := ParseLine(line)
		assert.Error(t, err, line)
	}
}

func TestEncodeDecode(t *testing.T) {
	vertices := FromFunc(cube, Domain{Start: -200, Step: 100, Count: 230})
	vertices = append(vertices, New(mgl32.Vec3{math.SmallestNonzeroFloat32, math.MaxFloat32, -0.1}, mgl32.Vec3{0.25, 0.5, 0.75}))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, vertices))
	assert.Equal(t, len(vertices), strings.Count(buf.String(), "\n"))

	back, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, vertices, back)
}

var errDiskFull = errors.New("disk full")

type failingWriter struct {
	limit   int // bytes accepted before failing
	written int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.limit {
		n := w.limit - w.written
		w.written = w.limit
		return n, errDiskFull
	}
	w.written += len(p)
	return len(p), nil
}

func TestEncodeWriteError(t *testing.T) {
	tests := []struct {
		name     string
		vertices int
		limit    int
	}{
		{"fails on flush", 2, 0},
		{"fails once the buffer fills", 1000, 0},
		{"fails partway", 1000, 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vertices := FromFunc(cube, Domain{Start: 0, Step: 7, Count: tt.vertices})
			w := &failingWriter{limit: tt.limit}
			err := Encode(w, vertices)
			require.Error(t, err)
			assert.ErrorIs(t, err, errDiskFull)
		})
	}
}

func TestDecodeBlankAndBadLines(t *testing.T) {
	vertices, err := Decode(strings.NewReader("1 2 3 1 1 1\n\n  \n4 5 6 0 0 0\n"))
	require.NoError(t, err)
	assert.Len(t, vertices, 2)

	_, err = Decode(strings.NewReader("1 2 3 1 1 1\n\n1 2 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestWriteFileTruncateAndAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "VertexData.txt")

	first := FromFunc(square, Domain{Start: -200, Step: 100, Count: 30})
	second := FromFunc(cube, Domain{Start: -200, Step: 100, Count: 30})

	// stale content is replaced by the first write
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0644))
	require.NoError(t, WriteFile(path, first, false))
	require.NoError(t, WriteFile(path, second, true))

	back, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, back, len(first)+len(second))
	assert.Equal(t, first, back[:len(first)])
	assert.Equal(t, second, back[len(first):])

	// truncating again leaves only the new list
	require.NoError(t, WriteFile(path, second, false))
	back, err = ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, second, back)
}

func TestWriteFileOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "VertexData.txt")
	err := WriteFile(path, []Vertex{Default()}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadFile(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
