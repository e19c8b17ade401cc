package segment

import (
	"iter"
	"strings"

	"golang.org/x/net/html"

	"github.com/urbanniche/taxoparse/internal/htmldoc"
)

// familyOrders maps corpus family-section indices to taxonomic orders.
// Indices in the source carry a position suffix (fam_33_0); only the
// first two tokens identify the family.
var familyOrders = map[string]string{
	"fam_32": "Cathartiformes",  // New World vultures
	"fam_33": "Accipitriformes", // hawks, eagles, kites
	"fam_34": "Strigiformes",    // owls
	"fam_42": "Falconiformes",   // falcons and caracaras
}

// Card is one taxonomy-card fragment: the list item describing a single
// species, plus context resolved while walking to it.
type Card struct {
	// Node is the li element holding the card markup.
	Node *html.Node
	// SpeciesCode is the card's data-speciescode attribute value.
	SpeciesCode string
	// FamilyOrder is the taxonomic order of the enclosing family section,
	// or empty when the card sits outside any recognized section.
	FamilyOrder string
}

// Cards yields one Card per species entry, in document order. The
// boundary criterion is an li element containing a div with a
// data-speciescode attribute. The sequence is lazy and restartable; a
// document with no boundaries yields nothing.
func Cards(doc *htmldoc.Document) iter.Seq[Card] {
	return func(yield func(Card) bool) {
		walk(doc.Root, "", yield)
	}
}

func walk(n *html.Node, order string, yield func(Card) bool) bool {
	if n.Type == html.ElementNode {
		if strings.EqualFold(n.Data, "ol") {
			if idx, ok := attrVal(n, "data-familyindex"); ok {
				order = orderForFamily(idx)
			}
		}
		if strings.EqualFold(n.Data, "li") {
			if div := findSpeciesDiv(n); div != nil {
				code, _ := attrVal(div, "data-speciescode")
				// Cards do not nest; stop descending once one is emitted.
				return yield(Card{Node: n, SpeciesCode: code, FamilyOrder: order})
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, order, yield) {
			return false
		}
	}
	return true
}

func orderForFamily(index string) string {
	parts := strings.Split(index, "_")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return familyOrders[strings.Join(parts, "_")]
}

func findSpeciesDiv(n *html.Node) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, "div") {
			if _, ok := attrVal(cur, "data-speciescode"); ok {
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

func attrVal(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}
