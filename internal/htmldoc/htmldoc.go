package htmldoc

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Document is one parsed HTML input file.
type Document struct {
	Path string
	Root *html.Node
}

// Load reads the file at path and parses it into a node tree. Input is
// decoded according to its declared charset (BOM or meta tag), defaulting
// to UTF-8. A missing or undecodable file is the only fatal condition in
// the pipeline; the error names the path.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	r, err := charset.NewReader(bytes.NewReader(raw), "text/html")
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &Document{Path: path, Root: root}, nil
}
