package serializer

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fracta7/recipegen/pkg/errors"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//
// Returns an empty (unknown) Format for any other extension.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// Reader handles deserialization of structured data from JSON or YAML.
//
// Close must be called to release resources when using NewFileReader or
// NewFileReaderAuto. Close is idempotent and a no-op for readers created with
// NewReader from non-closeable sources.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader source.
//
// Returns error if the format is unknown or is FormatTable, which is write-only.
// If input implements io.Closer, it will be closed by Reader.Close().
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if err := checkReadable(format); err != nil {
		return nil, err
	}

	r := &Reader{
		format: format,
		input:  input,
	}

	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}

	return r, nil
}

// NewFileReader creates a new Reader for a local file.
// A missing file yields ErrCodeNotFound; other open failures ErrCodeInternal.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if err := checkReadable(format); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		code := errors.ErrCodeInternal
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrCodeNotFound
		}
		return nil, errors.WrapWithContext(code, "failed to open file", err,
			map[string]any{"path": filePath})
	}

	return &Reader{
		format: format,
		input:  file,
		closer: file,
	}, nil
}

// NewFileReaderAuto creates a new Reader with the format determined from the
// file extension using FormatFromPath.
func NewFileReaderAuto(filePath string) (*Reader, error) {
	return NewFileReader(FormatFromPath(filePath), filePath)
}

func checkReadable(format Format) error {
	if format.IsUnknown() {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "unknown format",
			map[string]any{"format": string(format)})
	}
	if format == FormatTable {
		return errors.New(errors.ErrCodeInvalidRequest, "table format does not support deserialization")
	}
	return nil
}

// Deserialize reads data from the input source and unmarshals it into v,
// which must be a pointer. Decode failures, including empty input, are
// reported with ErrCodeInvalidRequest.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}

	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode JSON", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode YAML", err)
		}
		return nil

	case FormatTable:
		return fmt.Errorf("table format is not supported for deserialization")

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader.
// Safe to call multiple times and on a nil Reader.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil // Prevent double-close
		return err
	}
	return nil
}

// FromFile reads and deserializes a local JSON or YAML file into type T.
// The format is detected from the file extension.
//
// Example:
//
//	cfg, err := FromFile[config.File]("recipegen.yaml")
func FromFile[T any](path string) (*T, error) {
	fileFormat := FormatFromPath(path)
	slog.Debug("determined file format",
		slog.String("path", path),
		slog.String("format", string(fileFormat)),
	)

	ser, err := NewFileReader(fileFormat, path)
	if err != nil {
		return nil, err
	}

	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	var r T
	if err := ser.Deserialize(&r); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"failed to deserialize file", err, map[string]any{"path": path})
	}

	return &r, nil
}
