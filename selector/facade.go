package selector

// Free functions mirroring the Builder mutators. Each call creates a fresh
// builder and forwards to it, so independent selector constructions never
// share state:
//
//	selector.ID("main").Class("container").Class("editable").String()
//
// yields "#main.container.editable".

// Element starts a new builder with a type selector.
func Element(value string) *Builder {
	return New().Element(value)
}

// ID starts a new builder with an id selector.
func ID(value string) *Builder {
	return New().ID(value)
}

// Class starts a new builder with a class selector.
func Class(value string) *Builder {
	return New().Class(value)
}

// Attr starts a new builder with an attribute selector.
func Attr(value string) *Builder {
	return New().Attr(value)
}

// PseudoClass starts a new builder with a pseudo-class selector.
func PseudoClass(value string) *Builder {
	return New().PseudoClass(value)
}

// PseudoElement starts a new builder with a pseudo-element selector.
func PseudoElement(value string) *Builder {
	return New().PseudoElement(value)
}

// Combine starts a new builder holding a and b joined by combinator.
func Combine(a *Builder, combinator string, b *Builder) *Builder {
	return New().Combine(a, combinator, b)
}
