package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testEvaluation struct {
	Machine string  `json:"machine" yaml:"machine"`
	Speed   float64 `json:"speed" yaml:"speed"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testEvaluation{
		{Machine: "Macerator", Speed: 1},
		{Machine: "Volcanus", Speed: 2.2},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testEvaluation
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[1].Machine != "Volcanus" || result[1].Speed != 2.2 {
		t.Errorf("Unexpected data: %+v", result[1])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testEvaluation{
		{Machine: "Macerator", Speed: 1},
		{Machine: "Volcanus", Speed: 2.2},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testEvaluation
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if len(result) != 2 || result[0].Machine != "Macerator" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := []testEvaluation{
		{Machine: "Macerator", Speed: 1},
		{Machine: "Volcanus", Speed: 2.2},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "FIELD") || !strings.Contains(output, "VALUE") {
		t.Error("Expected table header not found")
	}
	if !strings.Contains(output, "[0].Machine") || !strings.Contains(output, "[1].Speed") {
		t.Error("Expected flattened keys not found")
	}
	if !strings.Contains(output, "Volcanus") {
		t.Error("Expected value 'Volcanus' not found")
	}
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), []testEvaluation{}); err != nil {
		t.Fatalf("Serialize empty slice failed: %v", err)
	}

	if !strings.Contains(buf.String(), "<empty>") {
		t.Errorf("Expected '<empty>' in output, got: %s", buf.String())
	}
}

func TestWriter_SerializeTable_NestedStructs(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type overclock struct {
		DisplayName string
		Perfect     int
	}
	type result struct {
		Machine   string
		Overclock overclock
	}

	data := result{
		Machine:   "Electric Blast Furnace",
		Overclock: overclock{DisplayName: "Perfect OC x1", Perfect: 1},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Overclock.DisplayName") {
		t.Error("Expected flattened key 'Overclock.DisplayName' not found")
	}
	if !strings.Contains(output, "Perfect OC x1") {
		t.Error("Expected overclock display value not found")
	}
}

func TestWriter_SerializeTable_Maps(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := map[string]any{
		"coil":     2.0,
		"muffler":  1.0,
		"pressure": true,
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "coil") || !strings.Contains(output, "muffler") {
		t.Error("Expected all map keys in output")
	}
}

func TestWriter_SerializeTable_NilValues(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type withNil struct {
		Machine string
		Tier    *int
	}

	if err := writer.Serialize(context.Background(), withNil{Machine: "Macerator"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Machine") {
		t.Error("Expected 'Machine' field in output")
	}
}

func TestNewWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	data := testEvaluation{Machine: "Macerator", Speed: 1}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize should not fail with unknown format: %v", err)
	}

	var result testEvaluation
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal as JSON: %v", err)
	}
	if result.Machine != "Macerator" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_Close(t *testing.T) {
	writer := NewStdoutWriter(FormatJSON)
	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer should not error: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Multiple Close calls should not error: %v", err)
	}
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	for _, path := range []string{"", "  ", "\t"} {
		writer := NewFileWriterOrStdout(FormatJSON, path)
		if writer == nil {
			t.Fatalf("Expected non-nil writer for empty path %q", path)
		}
		if closer, ok := writer.(Closer); ok {
			if err := closer.Close(); err != nil {
				t.Errorf("Close failed for empty path writer: %v", err)
			}
		}
	}
}

func TestNewFileWriterOrStdout_Success(t *testing.T) {
	tmpFile := t.TempDir() + "/evaluations.json"

	writer := NewFileWriterOrStdout(FormatJSON, tmpFile)
	data := testEvaluation{Machine: "Volcanus", Speed: 2.2}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if closer, ok := writer.(Closer); ok {
		if err := closer.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	content, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var result testEvaluation
	if err := json.Unmarshal(content, &result); err != nil {
		t.Fatalf("Failed to unmarshal file content: %v", err)
	}
	if result.Machine != "Volcanus" || result.Speed != 2.2 {
		t.Errorf("Unexpected data in file: %+v", result)
	}
}

func TestNewFileWriterOrStdout_InvalidPath(t *testing.T) {
	// Falls back to stdout rather than failing.
	writer := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/out.json")
	if writer == nil {
		t.Fatal("Expected non-nil writer (should fallback to stdout)")
	}
	if closer, ok := writer.(Closer); ok {
		if err := closer.Close(); err != nil {
			t.Errorf("Close should not error on fallback writer: %v", err)
		}
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
		}
	}
}
