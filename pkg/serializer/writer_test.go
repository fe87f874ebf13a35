package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/fracta7/recipegen/pkg/errors"
)

const (
	testName  = "test"
	test1Name = "test1"
)

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[0].Name != test1Name || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testConfig{Name: testName, Value: 7}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result != data {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := []any{
		testConfig{Name: test1Name, Value: 123},
		testConfig{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "FIELD") || !strings.Contains(output, "VALUE") {
		t.Error("Expected table header not found")
	}
	if !strings.Contains(output, "[0].Name") || !strings.Contains(output, "[1].Value") {
		t.Error("Expected flattened keys not found")
	}
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), []string{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestWriter_SerializeCanceled(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := writer.Serialize(ctx, testConfig{Name: testName})
	if !errors.IsCode(err, errors.ErrCodeTimeout) {
		t.Errorf("expected TIMEOUT, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter("invalid", &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: testName, Value: 1}); err != nil {
		t.Fatalf("Serialize should fall back to JSON: %v", err)
	}

	var result testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Errorf("expected JSON output: %v", err)
	}
}

func TestNewWriter_NilOutput(t *testing.T) {
	writer := NewWriter(FormatJSON, nil)
	if writer.output != os.Stdout {
		t.Error("expected stdout when output is nil")
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	for _, path := range []string{"", "  ", "-"} {
		w := NewFileWriterOrStdout(FormatYAML, path)
		if w.output != os.Stdout {
			t.Errorf("path %q: expected stdout", path)
		}
		if err := w.Close(); err != nil {
			t.Errorf("path %q: Close() error = %v", path, err)
		}
	}

	path := filepath.Join(t.TempDir(), "report.json")
	w := NewFileWriterOrStdout(FormatJSON, path)
	if err := w.Serialize(context.Background(), testConfig{Name: testName, Value: 5}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(content), `"name": "test"`) {
		t.Errorf("unexpected content: %s", content)
	}
}

func TestNewFileWriterOrStdout_InvalidPath(t *testing.T) {
	w := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "report.json"))
	if w.output != os.Stdout {
		t.Error("expected fallback to stdout")
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("%s should be known", f)
		}
	}
	for _, f := range []Format{"", "xml", "kotlin"} {
		if !f.IsUnknown() {
			t.Errorf("%q should be unknown", f)
		}
	}
}

func TestWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Recipes.kt")

	if err := os.WriteFile(path, []byte("stale content that is longer than the new one"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := WriteToFile(path, []byte("fresh"), 0o644); err != nil {
		t.Fatalf("WriteToFile() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "fresh" {
		t.Errorf("content = %q, want %q", content, "fresh")
	}
}

func TestWriteToFile_Unwritable(t *testing.T) {
	err := WriteToFile(filepath.Join(t.TempDir(), "missing", "Recipes.kt"), []byte("x"), 0o644)
	if !errors.IsCode(err, errors.ErrCodeInternal) {
		t.Errorf("expected INTERNAL, got %v", err)
	}
}
