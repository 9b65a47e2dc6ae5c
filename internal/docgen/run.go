// Package docgen drives the documentation build: it discovers markdown
// files, feeds them through the doctree parser into one shared root, and
// writes the encoded ValueTree binary (plus, optionally, the XML form).
package docgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/uh6654/plugdata/internal/doctree"
)

// Config holds the build configuration.
type Config struct {
	// DocsDir is the documentation root. Its immediate subdirectories
	// are scanned for .md files; everything else is ignored.
	DocsDir string

	// BinPath is where the encoded binary tree is written.
	BinPath string

	// WriteXML controls whether the tree is also written as XML.
	WriteXML bool

	// XMLPath is where the XML form is written when WriteXML is set.
	XMLPath string

	// Output receives progress and summary rendering (defaults to stdout).
	Output io.Writer
}

// Stats summarizes a completed build.
type Stats struct {
	Files   int // markdown files parsed
	Objects int // object nodes produced
	Bytes   int // size of the binary blob
}

// Run executes one documentation build. The root node is created here,
// mutated only while files are discovered, and frozen before encoding
// begins; discovery is strictly sequential so the two phases never
// overlap. Any parse or encode error aborts the run with the offending
// file in the message and no partial output.
func Run(cfg Config) (*Stats, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	if _, err := os.Stat(cfg.DocsDir); err != nil {
		return nil, fmt.Errorf("documentation directory: %w", err)
	}

	FormatHeader(cfg.Output, cfg)

	root := doctree.NewNode("root")
	stats := &Stats{}

	entries, err := os.ReadDir(cfg.DocsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", cfg.DocsDir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		subdir := filepath.Join(cfg.DocsDir, entry.Name())
		files, err := os.ReadDir(subdir)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", subdir, err)
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
				continue
			}
			path := filepath.Join(subdir, file.Name())
			content, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
			if err := doctree.BuildObjects(root, string(content)); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			stats.Files++
		}
	}
	stats.Objects = len(root.Children)

	if cfg.WriteXML {
		if err := writeXMLFile(cfg.XMLPath, root); err != nil {
			return nil, err
		}
	}

	blob, err := doctree.EncodeTree(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.BinPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(cfg.BinPath, blob, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", cfg.BinPath, err)
	}
	stats.Bytes = len(blob)

	FormatSummary(cfg.Output, stats)
	return stats, nil
}

func writeXMLFile(path string, root *doctree.Node) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := doctree.WriteXML(f, root); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
