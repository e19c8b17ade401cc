package htmldoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestLoad_ParsesUTF8File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.html")
	require.NoError(t, os.WriteFile(path, []byte(`<!doctype html>
<html><body><li><div data-speciescode="calcon"></div></li></body></html>`), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, doc.Root)
	assert.Equal(t, path, doc.Path)
}

func TestLoad_MissingFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.html")

	doc, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_DecodesDeclaredCharset(t *testing.T) {
	// "Ménagerie" with é as the single windows-1252 byte 0xE9.
	body := []byte("<html><head><meta charset=\"windows-1252\"></head><body><p>M\xe9nagerie</p></body></html>")
	path := filepath.Join(t.TempDir(), "latin.html")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, allText(doc.Root), "Ménagerie")
}

func allText(n *html.Node) string {
	var b strings.Builder
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return b.String()
}
