package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format based on file
// extension. Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//
// Returns FormatJSON as default for unknown extensions. Extension matching
// is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader handles deserialization of structured data from JSON or YAML
// sources. Close is a no-op for readers created from non-closeable sources
// and is safe to call multiple times.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader for deserializing data from an io.Reader
// source. Table format is write-only and is rejected.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}
	r := &Reader{format: format, input: input}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader opens the file at path and creates a Reader with the format
// inferred from the file extension. Close must be called to release the file
// handle.
func NewFileReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	return NewReader(FormatFromPath(path), file)
}

// Deserialize decodes the reader's content into out.
func (r *Reader) Deserialize(out any) error {
	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(out); err != nil {
			return fmt.Errorf("failed to deserialize JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(out); err != nil {
			return fmt.Errorf("failed to deserialize YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
	return nil
}

// Close releases the underlying source when it is closeable. Safe to call
// multiple times.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}

// FromFile reads and deserializes a JSON or YAML file into a value of type
// T. The format is inferred from the file extension.
func FromFile[T any](path string) (*T, error) {
	reader, err := NewFileReader(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "path", path, "error", closeErr)
		}
	}()

	var out T
	if err := reader.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return &out, nil
}
