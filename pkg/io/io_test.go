package io

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/audiocircuits/pkg/board"
	"github.com/matzehuels/audiocircuits/pkg/circuit"
	"github.com/matzehuels/audiocircuits/pkg/errors"
)

func buildDual(t *testing.T) *circuit.Board {
	t.Helper()
	b, err := board.Build(context.Background(), board.DualBuffer())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return b
}

func TestRoundTrip(t *testing.T) {
	want := buildDual(t)

	var buf bytes.Buffer
	if err := WriteJSON(want, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExportImportFile(t *testing.T) {
	want := buildDual(t)
	path := filepath.Join(t.TempDir(), "board.json")

	if err := ExportJSON(want, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if got.ComponentCount() != want.ComponentCount() || got.TraceCount() != want.TraceCount() {
		t.Errorf("imported %d components/%d traces, want %d/%d",
			got.ComponentCount(), got.TraceCount(), want.ComponentCount(), want.TraceCount())
	}
}

func TestWriteJSONShape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(buildDual(t), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	hdr := doc["board"].(map[string]any)
	if hdr["width"] != "80mm" || hdr["height"] != "50mm" {
		t.Errorf("board header = %v", hdr)
	}

	out := buf.String()
	for _, want := range []string{
		`"sch_pin_arrangement"`,
		`"supplier_part_numbers"`,
		`"pin_labels"`,
		`"leftSide"`,
		`"to": ".BUF_A_C_IN > .pin1"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}
	if strings.Contains(out, `\u003e`) {
		t.Error("trace selectors must be written verbatim, found escaped '>'")
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  errors.Code
	}{
		{"malformed", `{"board":`, errors.ErrCodeInvalidFormat},
		{"unknown field", `{"board":{},"groups":[],"extra":1}`, errors.ErrCodeInvalidFormat},
		{
			"unknown kind",
			`{"board":{"name":"b"},"groups":[{"name":"G","components":[{"kind":"inductor","name":"L1"}],"nets":[],"traces":[]}]}`,
			errors.ErrCodeInvalidFormat,
		},
		{
			"dangling trace",
			`{"board":{"name":"b"},"groups":[{"name":"G","components":[{"kind":"resistor","name":"R1","value":"1k"}],"nets":[],"traces":[{"from":".R1 > .pin1","to":"net.GND"}]}]}`,
			errors.ErrCodeInvalidDeclaration,
		},
		{
			"unknown pin",
			`{"board":{"name":"b"},"groups":[{"name":"G","components":[{"kind":"resistor","name":"R1","value":"1k"}],"nets":[{"name":"GND"}],"traces":[{"from":".R1 > .pin3","to":"net.GND"}]}]}`,
			errors.ErrCodeInvalidDeclaration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadJSON() error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}
