// Package selector assembles CSS compound and combinator selectors from
// discrete parts while enforcing the structural grammar of a compound
// selector: singleton parts appear at most once and all parts follow the
// canonical category order.
package selector

import (
	"errors"
)

// category identifies a kind of simple selector within a compound selector.
type category int

const (
	catType category = iota
	catID
	catClass
	catAttribute
	catPseudoClass
	catPseudoElement
)

// canonicalOrder is the fixed order categories must follow inside one
// compound selector. Ordering is always checked against this slice, never
// against map iteration order.
var canonicalOrder = [...]category{
	catType,
	catID,
	catClass,
	catAttribute,
	catPseudoClass,
	catPseudoElement,
}

// String returns the human readable category name as used in error text.
func (c category) String() string {
	switch c {
	case catType:
		return "element"
	case catID:
		return "id"
	case catClass:
		return "class"
	case catAttribute:
		return "attribute"
	case catPseudoClass:
		return "pseudo-class"
	case catPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// singleton reports whether the category may occur at most once per selector.
func (c category) singleton() bool {
	return c == catType || c == catID || c == catPseudoElement
}

// format renders a raw value as the category's simple selector fragment.
func (c category) format(value string) string {
	switch c {
	case catID:
		return "#" + value
	case catClass:
		return "." + value
	case catAttribute:
		return "[" + value + "]"
	case catPseudoClass:
		return ":" + value
	case catPseudoElement:
		return "::" + value
	default:
		return value
	}
}

// Combinators accepted by Combine.
const (
	Descendant      = " "
	AdjacentSibling = "+"
	GeneralSibling  = "~"
	Child           = ">"
)

var (
	// ErrDuplicatePart is reported when element, id or pseudo-element is set
	// more than once on the same builder.
	ErrDuplicatePart = errors.New("element, id and pseudo-element should not occur more than one time inside the selector")

	// ErrInvalidOrder is reported when a part is added out of canonical order.
	ErrInvalidOrder = errors.New("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")

	// ErrUnknownCombinator is reported when Combine is given a token other
	// than " ", "+", "~" or ">".
	ErrUnknownCombinator = errors.New("combinator must be one of \" \", \"+\", \"~\", \">\"")
)
