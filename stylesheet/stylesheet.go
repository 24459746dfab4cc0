// Package stylesheet renders rules assembled from built selectors into CSS
// text and loads rule definitions from YAML documents.
package stylesheet

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// cssEscapeDoubleQuoted escapes a string for use inside CSS double quotes.
// Backslashes and double quotes are escaped per CSS syntax: \" and \\.
func cssEscapeDoubleQuoted(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Rule is a single CSS rule: a rendered selector plus its declarations.
type Rule struct {
	Selector   string            // Rendered selector text (builder output)
	Properties map[string]string // Property name -> value
	SourceLine int               // Line number in the definition document
}

// GetProperty returns the value for a property and whether it was set.
func (r Rule) GetProperty(name string) (string, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// MediaBlock is a @media block with its raw query and nested rules.
type MediaBlock struct {
	Query string
	Rules []Rule
}

// Item is a single top-level stylesheet item. Exactly one of Rule,
// MediaBlock or Import is non-nil.
type Item struct {
	Rule       *Rule
	MediaBlock *MediaBlock
	Import     *string
}

// Stylesheet is an ordered collection of rendered items.
type Stylesheet struct {
	Items    []Item   // All top-level items in source order
	Warnings []string // Definitions that could not be built
}

// Selectors returns the rendered selector of every rule in source order,
// including rules nested in @media blocks.
func (s *Stylesheet) Selectors() []string {
	var out []string
	for _, item := range s.Items {
		switch {
		case item.Rule != nil:
			out = append(out, item.Rule.Selector)
		case item.MediaBlock != nil:
			for _, r := range item.MediaBlock.Rules {
				out = append(out, r.Selector)
			}
		}
	}
	return out
}

// RulesBySelector returns all top-level rules matching the given selector.
func (s *Stylesheet) RulesBySelector(sel string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == sel {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing
// io.WriterTo. Property order within a rule is sorted alphabetically for
// deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Import != nil:
			n, err = fmt.Fprintf(w, "@import url(\"%s\");\n", cssEscapeDoubleQuoted(*item.Import))
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, "")
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w, prefixing every line with indent.
func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, rule.Selector)
	total += n
	if err != nil {
		return total, err
	}

	// Sort property names for deterministic output
	names := make([]string, 0, len(rule.Properties))
	for name := range rule.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n, err = fmt.Fprintf(w, "%s  %s: %s;\n", indent, name, rule.Properties[name])
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

// writeMediaBlock writes a @media block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Query)
	total += n
	if err != nil {
		return total, err
	}

	for i, rule := range mb.Rules {
		n, err = writeRule(w, &rule, "  ")
		total += n
		if err != nil {
			return total, err
		}

		// Blank line between rules in a media block (except after last)
		if i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
