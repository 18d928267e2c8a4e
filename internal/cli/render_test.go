package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDocumentDotPassthrough(t *testing.T) {
	document := "digraph { A -> B }\n"
	path := filepath.Join(t.TempDir(), "input.dot")
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	got, err := loadDocument(path)
	if err != nil {
		t.Fatalf("loadDocument() error: %v", err)
	}
	if got != document {
		t.Errorf("loadDocument() = %q, want %q", got, document)
	}
}

func TestLoadDocumentEncodesDescription(t *testing.T) {
	description := `{
  "vertices": [
    {"id": "a", "width": 1, "height": 2},
    {"id": "b", "width": 1, "height": 1}
  ],
  "edges": [
    {"tail_id": "a", "head_id": "b"}
  ]
}`
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(description), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	got, err := loadDocument(path)
	if err != nil {
		t.Fatalf("loadDocument() error: %v", err)
	}
	if !strings.HasPrefix(got, "digraph {") {
		t.Errorf("loadDocument() = %q, want digraph document", got)
	}
	if !strings.Contains(got, "C -> {D}") {
		t.Errorf("loadDocument() missing edge statement: %q", got)
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	if _, err := loadDocument(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("loadDocument() should fail for a missing file")
	}
	if _, err := loadDocument(filepath.Join(t.TempDir(), "absent.dot")); err == nil {
		t.Error("loadDocument() should fail for a missing dot file")
	}
}
