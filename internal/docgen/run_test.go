package docgen

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uh6654/plugdata/internal/doctree"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestRun(t *testing.T) {
	docs := t.TempDir()
	out := t.TempDir()

	writeDoc(t, filepath.Join(docs, "audio"), "osc.md",
		"title: osc~\npdcategory: Audio\ninlets:\n  1st:\n  - type: float\n    description: frequency\n")
	writeDoc(t, filepath.Join(docs, "audio"), "untitled.md", "description: no title, skipped\n")
	writeDoc(t, filepath.Join(docs, "audio"), "notes.txt", "not documentation")
	// top-level files are ignored; only subdirectories are scanned
	writeDoc(t, docs, "stray.md", "title: never parsed\n")

	binPath := filepath.Join(out, "Documentation.bin")
	xmlPath := filepath.Join(out, "Documentation.xml")

	var buf bytes.Buffer
	stats, err := Run(Config{
		DocsDir:  docs,
		BinPath:  binPath,
		WriteXML: true,
		XMLPath:  xmlPath,
		Output:   &buf,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if stats.Files != 2 {
		t.Errorf("Files = %d, want 2", stats.Files)
	}
	if stats.Objects != 1 {
		t.Errorf("Objects = %d, want 1", stats.Objects)
	}

	blob, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read binary: %v", err)
	}
	if !bytes.HasPrefix(blob, []byte("root\x00")) {
		t.Errorf("binary does not start with the root tag: %x", blob[:min(len(blob), 8)])
	}
	if stats.Bytes != len(blob) {
		t.Errorf("Bytes = %d, file has %d", stats.Bytes, len(blob))
	}

	markup, err := os.ReadFile(xmlPath)
	if err != nil {
		t.Fatalf("read xml: %v", err)
	}
	if !strings.Contains(string(markup), `name="osc~"`) {
		t.Errorf("xml missing object: %s", markup)
	}

	if !strings.Contains(buf.String(), "Build Complete") {
		t.Errorf("summary not rendered: %q", buf.String())
	}
}

func TestRunNoXML(t *testing.T) {
	docs := t.TempDir()
	out := t.TempDir()
	writeDoc(t, filepath.Join(docs, "control"), "metro.md", "title: metro\n")

	xmlPath := filepath.Join(out, "Documentation.xml")
	_, err := Run(Config{
		DocsDir: docs,
		BinPath: filepath.Join(out, "Documentation.bin"),
		XMLPath: xmlPath,
		Output:  &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(xmlPath); !os.IsNotExist(err) {
		t.Errorf("xml written without --xml: %v", err)
	}
}

func TestRunMissingDocsDir(t *testing.T) {
	_, err := Run(Config{
		DocsDir: filepath.Join(t.TempDir(), "missing"),
		BinPath: filepath.Join(t.TempDir(), "Documentation.bin"),
		Output:  &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error for missing docs directory")
	}
}

func TestRunNamesOffendingFile(t *testing.T) {
	docs := t.TempDir()
	out := t.TempDir()
	writeDoc(t, filepath.Join(docs, "control"), "bad.md",
		"title: broken\nmethods:\n- type: set\n")

	_, err := Run(Config{
		DocsDir: docs,
		BinPath: filepath.Join(out, "Documentation.bin"),
		Output:  &bytes.Buffer{},
	})
	if !errors.Is(err, doctree.ErrMissingField) {
		t.Fatalf("err = %v, want ErrMissingField", err)
	}
	if !strings.Contains(err.Error(), "bad.md") {
		t.Errorf("error %q does not name the file", err)
	}
	if _, statErr := os.Stat(filepath.Join(out, "Documentation.bin")); !os.IsNotExist(statErr) {
		t.Error("binary written despite parse failure")
	}
}
