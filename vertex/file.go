package vertex

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Dump file format: one vertex per line, "x y z r g b", every field the
// shortest decimal that parses back to the same float32.

// WriteFile writes vertices to path, one line each. With appendTo set the
// lines go after the existing content, otherwise the file is truncated.
func WriteFile(path string, vertices []Vertex, appendTo bool) (err error) {

	flags := os.O_CREATE | os.O_WRONLY
	if appendTo {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return fmt.Errorf("failed to open vertex file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close vertex file: %w", cerr)
		}
	}()

	if err := Encode(f, vertices); err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}

	return nil
}

// ReadFile parses a file written by WriteFile.
func ReadFile(path string) ([]Vertex, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vertex file: %w", err)
	}
	defer f.Close()

	vertices, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", path, err)
	}

	return vertices, nil
}

// Encode writes vertices in the dump format.
func Encode(w io.Writer, vertices []Vertex) error {
	bw := bufio.NewWriter(w)
	for _, v := range vertices {
		if _, err := bw.WriteString(FormatLine(v)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads vertices in the dump format. Blank lines are skipped.
func Decode(r io.Reader) ([]Vertex, error) {

	vertices := []Vertex{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		vertices = append(vertices, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return vertices, nil
}

// FormatLine renders one vertex without the line terminator.
func FormatLine(v Vertex) string {
	fields := make([]string, 0, Size)
	for _, f := range []float32{v.Pos[0], v.Pos[1], v.Pos[2], v.RGB[0], v.RGB[1], v.RGB[2]} {
		fields = append(fields, strconv.FormatFloat(float64(f), 'g', -1, 32))
	}
	return strings.Join(fields, " ")
}

// ParseLine is the inverse of FormatLine.
func ParseLine(text string) (Vertex, error) {

	fields := strings.Fields(text)
	if len(fields) != Size {
		return Vertex{}, fmt.Errorf("expected %d fields, got %d", Size, len(fields))
	}

	var values [Size]float32
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return Vertex{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		values[i] = float32(f)
	}

	return New(
		mgl32.Vec3{values[0], values[1], values[2]},
		mgl32.Vec3{values[3], values[4], values[5]},
	), nil
}
