package extract

import (
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/urbanniche/taxoparse/internal/segment"
)

// Fields holds the four values pulled from one taxonomy card. Every
// field is optional: a marker the card does not carry leaves its field
// empty, it never fails the card.
type Fields struct {
	Scientific string
	Common     string
	Order      string
	Status     string
}

// statusCodes is the closed IUCN vocabulary. Badge text outside this set
// maps to blank rather than a guessed code.
var statusCodes = map[string]bool{
	"CR": true,
	"EN": true,
	"VU": true,
	"NT": true,
	"LC": true,
	"DD": true,
}

// orderNames is the closed vocabulary of orders the dataset covers.
var orderNames = map[string]bool{
	"Cathartiformes":  true,
	"Accipitriformes": true,
	"Strigiformes":    true,
	"Falconiformes":   true,
}

// orderStems maps filename-stem fragments to orders for single-family
// input files (cathar.html, accipitridae.html, ...).
var orderStems = []struct{ stem, order string }{
	{"cathar", "Cathartiformes"},
	{"accip", "Accipitriformes"},
	{"strig", "Strigiformes"},
	{"falcon", "Falconiformes"},
}

// FromCard extracts the four fields from one card. Each lookup is
// independent and failure-isolated: a card missing one marker still
// yields the other three. contextOrder supplies the document-level order
// for single-family files; the card's own family section wins when
// present.
func FromCard(card segment.Card, contextOrder string) Fields {
	var f Fields
	f.Common = nodeText(findSpan(card.Node, func(class string) bool {
		return class == "Heading-main"
	}))
	f.Scientific = nodeText(findSpan(card.Node, func(class string) bool {
		return strings.Contains(class, "Heading-sub--sci")
	}))
	if badge := nodeText(findSpan(card.Node, func(class string) bool {
		return class == "Badge-label"
	})); badge != "" {
		// Badge text may read "CR Critically Endangered"; only the
		// leading code matters.
		code, _, _ := strings.Cut(badge, " ")
		if statusCodes[code] {
			f.Status = code
		}
	}
	order := card.FamilyOrder
	if order == "" {
		order = contextOrder
	}
	if orderNames[order] {
		f.Order = order
	}
	return f
}

// OrderFromFilename resolves the taxonomic order of a single-family input
// from its filename stem. Unrecognized stems resolve to blank.
func OrderFromFilename(path string) string {
	base := filepath.Base(path)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	for _, m := range orderStems {
		if strings.Contains(stem, m.stem) {
			return m.order
		}
	}
	return ""
}

// findSpan returns the first span beneath n whose class attribute
// satisfies match, in document order.
func findSpan(n *html.Node, match func(class string) bool) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, "span") {
			if class, ok := attrVal(cur, "class"); ok && match(class) {
				res = cur
				return
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

// nodeText collects all text beneath n, collapses the whitespace runs
// left by markup splits, and NFC-normalizes the result. A nil node
// yields "".
func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			b.WriteByte(' ')
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return norm.NFC.String(collapseSpaces(strings.TrimSpace(b.String())))
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}

func attrVal(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}
