// Package meta describes the shape of a composed command line grammar.
//
// Every parser carries a [Meta]: a leaf [Item] for the primitive parsers, and
// Sequence/Alternatives nodes built up as combinators compose them. The tree
// serves double duty: "missing" diagnostics carry the fragments that failed
// to match, and help rendering walks the whole tree to produce usage text.
package meta

import "strings"

// ItemKind says what sort of grammar leaf an [Item] describes.
type ItemKind int

const (
	KindFlag       ItemKind = iota // named option, with or without a value
	KindPositional                 // unnamed value matched by position
	KindCommand                    // literal word starting a subcommand
)

// Item is the static descriptor of a single grammar leaf. Items are built
// once at grammar definition time and never mutated afterwards.
type Item struct {
	Kind     ItemKind
	Short    rune   // canonical short name, 0 when absent
	Long     string // canonical long name, empty when absent
	Metavar  string // value placeholder for arguments and positionals
	Help     string
	Required bool
}

// Name returns the user-facing name of the leaf: the short flag if there is
// one, otherwise the long flag, otherwise the metavar or command word.
func (it Item) Name() string {
	switch {
	case it.Kind == KindCommand:
		return it.Long
	case it.Short != 0:
		return "-" + string(it.Short)
	case it.Long != "":
		return "--" + it.Long
	default:
		return "<" + it.Metavar + ">"
	}
}

// Usage renders the compact usage form of the leaf, brackets marking an
// optional one.
func (it Item) Usage() string {
	var b strings.Builder
	if !it.Required {
		b.WriteByte('[')
	}
	b.WriteString(it.Name())
	if it.Kind == KindFlag && it.Metavar != "" {
		b.WriteByte(' ')
		b.WriteString(it.Metavar)
	}
	if !it.Required {
		b.WriteByte(']')
	}
	return b.String()
}

// Meta returns the leaf grammar node for this item.
func (it Item) Meta() Meta {
	return Meta{kind: nodeLeaf, item: it}
}

type nodeKind int

const (
	nodeAnd nodeKind = iota // the zero Meta is an empty sequence
	nodeOr
	nodeLeaf
)

// Meta is one node of the grammar tree: a leaf item, a sequence of nodes
// that must all match, or ordered alternatives of which one must match.
// Construction is purely structural; Meta is never consulted while tokens
// are being consumed, only for diagnostics and usage.
type Meta struct {
	kind     nodeKind
	item     Item
	children []Meta
}

// And builds a sequence node. Empty members are dropped.
func And(ms ...Meta) Meta {
	kept := make([]Meta, 0, len(ms))
	for _, m := range ms {
		if m.kind == nodeAnd && len(m.children) == 0 {
			continue
		}
		kept = append(kept, m)
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return Meta{kind: nodeAnd, children: kept}
}

// Or builds an alternatives node. Nested alternatives are flattened so that
// "expected one of" diagnostics list every branch at the same level.
func Or(ms ...Meta) Meta {
	flat := make([]Meta, 0, len(ms))
	for _, m := range ms {
		if m.kind == nodeOr {
			flat = append(flat, m.children...)
		} else {
			flat = append(flat, m)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Meta{kind: nodeOr, children: flat}
}

// Optional returns a copy of the tree with every leaf reclassified as not
// required. Wrapping a parser in a fallback makes its items optional for
// diagnostic purposes; the original items are left untouched.
func (m Meta) Optional() Meta {
	switch m.kind {
	case nodeLeaf:
		m.item.Required = false
		return m
	default:
		children := make([]Meta, len(m.children))
		for i, c := range m.children {
			children[i] = c.Optional()
		}
		m.children = children
		return m
	}
}

// Usage renders the compact usage line fragment for the whole tree.
func (m Meta) Usage() string {
	switch m.kind {
	case nodeLeaf:
		return m.item.Usage()
	case nodeOr:
		parts := make([]string, len(m.children))
		for i, c := range m.children {
			parts[i] = c.Usage()
		}
		if len(parts) > 1 {
			return "(" + strings.Join(parts, " | ") + ")"
		}
		return strings.Join(parts, " | ")
	default:
		parts := make([]string, 0, len(m.children))
		for _, c := range m.children {
			if u := c.Usage(); u != "" {
				parts = append(parts, u)
			}
		}
		return strings.Join(parts, " ")
	}
}

// Items collects the leaves of the tree in definition order.
func (m Meta) Items() []Item {
	switch m.kind {
	case nodeLeaf:
		return []Item{m.item}
	default:
		var items []Item
		for _, c := range m.children {
			items = append(items, c.Items()...)
		}
		return items
	}
}
