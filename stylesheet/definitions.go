package stylesheet

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssb/selector"
)

// Definition describes one selector to build. It mirrors the builder
// surface: singleton parts, repeatable part lists in append order, or a
// nested combination. A definition is either compound (part fields) or a
// combination, never both.
type Definition struct {
	Element       string   `yaml:"element,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attributes    []string `yaml:"attributes,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`

	Combine *Combination `yaml:"combine,omitempty"`

	Declarations map[string]string `yaml:"declarations,omitempty"`

	line int
}

// Combination joins two definitions with a combinator token.
type Combination struct {
	Left       Definition `yaml:"left"`
	Combinator string     `yaml:"combinator"`
	Right      Definition `yaml:"right"`
}

// MediaDefinition is a @media block in a definition document.
type MediaDefinition struct {
	Query string       `yaml:"query"`
	Rules []Definition `yaml:"rules"`
}

// Document is a parsed definition file.
type Document struct {
	Imports []string          `yaml:"imports,omitempty"`
	Rules   []Definition      `yaml:"rules,omitempty"`
	Media   []MediaDefinition `yaml:"media,omitempty"`
}

// UnmarshalYAML records the source line for error reporting and decodes the
// definition fields.
func (d *Definition) UnmarshalYAML(value *yaml.Node) error {
	type plain Definition
	if err := value.Decode((*plain)(d)); err != nil {
		return err
	}
	d.line = value.Line
	return nil
}

// Load parses a YAML definition document. Unknown top-level keys are
// rejected.
func Load(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		if err == io.EOF {
			// empty document
			return doc, nil
		}
		return nil, fmt.Errorf("failed to decode selector definitions: %w", err)
	}
	return doc, nil
}

// hasParts reports whether any compound part field is set.
func (d *Definition) hasParts() bool {
	return d.Element != "" || d.ID != "" || d.PseudoElement != "" ||
		len(d.Classes) != 0 || len(d.Attributes) != 0 || len(d.PseudoClasses) != 0
}

// Build replays the definition through a selector builder. Compound fields
// are replayed in canonical category order, so a well-formed definition can
// never trip the ordering check; combination conflicts and builder errors
// from nested sides still surface.
func (d *Definition) Build() (*selector.Builder, error) {
	if d.Combine != nil {
		if d.hasParts() {
			return nil, fmt.Errorf("line %d: definition mixes selector parts with a combination", d.line)
		}
		left, err := d.Combine.Left.Build()
		if err != nil {
			return nil, fmt.Errorf("left side: %w", err)
		}
		right, err := d.Combine.Right.Build()
		if err != nil {
			return nil, fmt.Errorf("right side: %w", err)
		}
		b := selector.Combine(left, d.Combine.Combinator, right)
		return b, b.Err()
	}

	if !d.hasParts() {
		return nil, fmt.Errorf("line %d: empty selector definition", d.line)
	}

	b := selector.New()
	if d.Element != "" {
		b.Element(d.Element)
	}
	if d.ID != "" {
		b.ID(d.ID)
	}
	for _, c := range d.Classes {
		b.Class(c)
	}
	for _, a := range d.Attributes {
		b.Attr(a)
	}
	for _, pc := range d.PseudoClasses {
		b.PseudoClass(pc)
	}
	if d.PseudoElement != "" {
		b.PseudoElement(d.PseudoElement)
	}
	return b, b.Err()
}

// rule builds the definition and pairs it with its declarations.
func (d *Definition) rule() (*Rule, error) {
	b, err := d.Build()
	if err != nil {
		return nil, err
	}
	return &Rule{
		Selector:   b.String(),
		Properties: d.Declarations,
		SourceLine: d.line,
	}, nil
}

// Build assembles a stylesheet from the document. Failing definitions are
// collected into the returned error and recorded as stylesheet warnings so
// one bad rule does not hide the rest.
func (doc *Document) Build(log *zap.Logger) (*Stylesheet, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("stylesheet")

	sheet := &Stylesheet{}
	var errs error

	for _, url := range doc.Imports {
		sheet.Items = append(sheet.Items, Item{Import: &url})
	}

	for i := range doc.Rules {
		rule, err := doc.Rules[i].rule()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rule %d: %w", i, err))
			sheet.Warnings = append(sheet.Warnings, fmt.Sprintf("rule %d: %v", i, err))
			continue
		}
		log.Debug("Built rule", zap.String("selector", rule.Selector), zap.Int("declarations", len(rule.Properties)))
		sheet.Items = append(sheet.Items, Item{Rule: rule})
	}

	for i := range doc.Media {
		md := &doc.Media[i]
		mb := &MediaBlock{Query: md.Query}
		for j := range md.Rules {
			rule, err := md.Rules[j].rule()
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("media %d rule %d: %w", i, j, err))
				sheet.Warnings = append(sheet.Warnings, fmt.Sprintf("media %d rule %d: %v", i, j, err))
				continue
			}
			mb.Rules = append(mb.Rules, *rule)
		}
		log.Debug("Built @media block", zap.String("query", mb.Query), zap.Int("rules", len(mb.Rules)))
		sheet.Items = append(sheet.Items, Item{MediaBlock: mb})
	}

	return sheet, errs
}
