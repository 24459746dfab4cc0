package selector

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Builder accumulates selector fragments per category and renders them as a
// compound selector, or as a combinator-joined chain after Combine.
//
// All mutators return the receiver so calls can be chained. Grammar is
// checked on every mutation: the first violation is latched, every later
// mutation becomes a no-op and Err exposes the failure. A builder with a
// latched error should be abandoned, there is no partial-state repair.
//
// A Builder is not safe for concurrent use; independent builders share no
// state and may be used in parallel freely.
type Builder struct {
	parts map[category][]string
	used  []category // categories in first-population order
	tail  []string   // combination parts, set by Combine
	err   error
}

// New returns an empty selector builder.
func New() *Builder {
	return &Builder{parts: make(map[category][]string)}
}

// Element sets the type selector, e.g. "div".
func (b *Builder) Element(value string) *Builder {
	return b.add(catType, value)
}

// ID sets the id selector, rendered as "#value".
func (b *Builder) ID(value string) *Builder {
	return b.add(catID, value)
}

// Class appends a class selector, rendered as ".value". Classes accumulate
// in call order.
func (b *Builder) Class(value string) *Builder {
	return b.add(catClass, value)
}

// Attr appends an attribute selector, rendered as "[value]". Attributes
// accumulate in call order.
func (b *Builder) Attr(value string) *Builder {
	return b.add(catAttribute, value)
}

// PseudoClass appends a pseudo-class selector, rendered as ":value".
// Pseudo-classes accumulate in call order.
func (b *Builder) PseudoClass(value string) *Builder {
	return b.add(catPseudoClass, value)
}

// PseudoElement sets the pseudo-element selector, rendered as "::value".
func (b *Builder) PseudoElement(value string) *Builder {
	return b.add(catPseudoElement, value)
}

func (b *Builder) add(cat category, value string) *Builder {
	if b.err != nil {
		return b
	}
	if b.parts == nil {
		b.parts = make(map[category][]string)
	}

	// The categories populated so far, in first-population order, must stay
	// a prefix of canonicalOrder restricted to those categories. Since used
	// is kept strictly increasing, the attempted category only has to be
	// checked against the last one. Ordering is checked before uniqueness,
	// so a duplicate singleton arriving after a later category reports the
	// ordering violation.
	if last, ok := b.last(); ok && cat < last {
		b.err = fmt.Errorf("%s added after %s: %w", cat, last, ErrInvalidOrder)
		return b
	}
	if _, ok := b.parts[cat]; ok {
		if cat.singleton() {
			b.err = fmt.Errorf("%s set twice: %w", cat, ErrDuplicatePart)
			return b
		}
	} else {
		b.used = append(b.used, cat)
	}
	b.parts[cat] = append(b.parts[cat], cat.format(value))
	return b
}

// last returns the most recently populated category, if any.
func (b *Builder) last() (category, bool) {
	if len(b.used) == 0 {
		return 0, false
	}
	return b.used[len(b.used)-1], true
}

// Combine joins two selectors with a combinator and stores the result on the
// receiver, which is returned for chaining.
//
// The stored parts are a's compound parts, the " combinator " separator, b's
// compound parts and b's own combination tail. Note the asymmetry: a prior
// combination held by a is dropped while b's is kept. That mirrors the
// reference behavior exactly and callers relying on nesting should put the
// inner combination on the right side.
//
// Combine performs no grammar validation beyond what a and b already did,
// but latched errors from either side (and an unknown combinator) carry over
// to the receiver.
func (b *Builder) Combine(a *Builder, combinator string, c *Builder) *Builder {
	switch combinator {
	case Descendant, AdjacentSibling, GeneralSibling, Child:
	default:
		b.err = multierr.Append(b.err, fmt.Errorf("%q: %w", combinator, ErrUnknownCombinator))
	}
	b.err = multierr.Combine(b.err, a.err, c.err)

	b.tail = b.tail[:0]
	b.tail = append(b.tail, a.compound()...)
	b.tail = append(b.tail, " "+combinator+" ")
	b.tail = append(b.tail, c.compound()...)
	b.tail = append(b.tail, c.tail...)
	return b
}

// compound returns the selector fragments in canonical category order, in
// append order within a category.
func (b *Builder) compound() []string {
	var out []string
	for _, cat := range canonicalOrder {
		out = append(out, b.parts[cat]...)
	}
	return out
}

// String renders the selector. For a combined builder the flattened
// combination parts are concatenated as is, the separator already carries
// its surrounding spaces. Otherwise the compound selector is rendered in
// canonical order. String is idempotent and never fails, even on a builder
// with a latched error it renders whatever was accepted.
func (b *Builder) String() string {
	if len(b.tail) != 0 {
		return strings.Join(b.tail, "")
	}
	return strings.Join(b.compound(), "")
}

// Err returns the first grammar violation latched on this builder, nil if
// the chain is valid so far. Use errors.Is against ErrDuplicatePart,
// ErrInvalidOrder or ErrUnknownCombinator to branch.
func (b *Builder) Err() error {
	return b.err
}
