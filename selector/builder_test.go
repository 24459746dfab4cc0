package selector_test

import (
	"errors"
	"testing"

	"cssb/selector"
)

func TestBuilder_Compound(t *testing.T) {
	tests := []struct {
		name string
		b    *selector.Builder
		want string
	}{
		{"element only", selector.Element("div"), "div"},
		{"id only", selector.ID("nav-bar"), "#nav-bar"},
		{"class only", selector.Class("warning"), ".warning"},
		{"attr only", selector.Attr("data-id"), "[data-id]"},
		{"pseudo class only", selector.PseudoClass("invalid"), ":invalid"},
		{"pseudo element only", selector.PseudoElement("first-letter"), "::first-letter"},
		{
			"id with classes keeps append order",
			selector.ID("main").Class("container").Class("editable"),
			"#main.container.editable",
		},
		{
			"element attr pseudo class",
			selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus"),
			`a[href$=".png"]:focus`,
		},
		{
			"all categories",
			selector.Element("div").ID("x").Class("draggable").Attr("data-kind=panel").PseudoClass("hover").PseudoElement("after"),
			"div#x.draggable[data-kind=panel]:hover::after",
		},
		{
			"skipping categories is fine",
			selector.Class("row").PseudoElement("before"),
			".row::before",
		},
		{
			"repeatables accumulate in call order",
			selector.Element("li").Class("b").Class("a").PseudoClass("nth-of-type(even)").PseudoClass("hover"),
			"li.b.a:nth-of-type(even):hover",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.b.Err(); err != nil {
				t.Fatalf("unexpected builder error: %v", err)
			}
			if got := tt.b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			// repeated rendering must not consume state
			if got := tt.b.String(); got != tt.want {
				t.Errorf("second String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder_DuplicateSingletons(t *testing.T) {
	tests := []struct {
		name string
		b    *selector.Builder
	}{
		{"element twice", selector.Element("div").Element("span")},
		{"id twice", selector.ID("a").ID("b")},
		{"pseudo element twice", selector.PseudoElement("before").PseudoElement("after")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.b.Err(), selector.ErrDuplicatePart) {
				t.Errorf("Err() = %v, want ErrDuplicatePart", tt.b.Err())
			}
		})
	}
}

func TestBuilder_RepeatablesHaveNoDuplicateRestriction(t *testing.T) {
	b := selector.Class("a").Class("a").Attr("x").Attr("x").PseudoClass("hover").PseudoClass("hover")
	if err := b.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := b.String(), ".a.a[x][x]:hover:hover"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilder_InvalidOrder(t *testing.T) {
	tests := []struct {
		name string
		b    *selector.Builder
	}{
		{"element after class", selector.Class("c").Element("div")},
		{"element after id", selector.ID("x").Element("div")},
		{"id after class", selector.Class("c").ID("x")},
		{"class after attr", selector.Attr("x").Class("c")},
		{"attr after pseudo class", selector.PseudoClass("hover").Attr("x")},
		{"pseudo class after pseudo element", selector.PseudoElement("after").PseudoClass("hover")},
		// ordering wins over uniqueness when a singleton comes back after a
		// later category
		{"late element in a long chain", selector.Element("div").ID("x").Class("c").Element("span")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.b.Err(); !errors.Is(err, selector.ErrInvalidOrder) {
				t.Errorf("Err() = %v, want ErrInvalidOrder", err)
			}
		})
	}
}

func TestBuilder_ErrorLatches(t *testing.T) {
	b := selector.Class("c").Element("div")
	first := b.Err()
	if first == nil {
		t.Fatal("expected latched error")
	}

	// later mutations are no-ops and keep the original error
	b.ID("x").Class("other").PseudoElement("after")
	if !errors.Is(b.Err(), selector.ErrInvalidOrder) {
		t.Errorf("Err() after further calls = %v, want ErrInvalidOrder", b.Err())
	}
	if got, want := b.String(), ".c"; got != want {
		// only parts accepted before the violation are rendered
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilder_Combine(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		a := selector.Element("p").PseudoClass("focus")
		b := selector.Element("p").PseudoElement("first-letter")
		got := selector.Combine(a, ">", b).String()
		if want := a.String() + " > " + b.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("all combinators", func(t *testing.T) {
		for _, comb := range []string{" ", "+", "~", ">"} {
			got := selector.Combine(selector.Element("div"), comb, selector.Element("span")).String()
			if want := "div " + comb + " span"; got != want {
				t.Errorf("combinator %q: String() = %q, want %q", comb, got, want)
			}
		}
	})

	t.Run("right nesting renders left to right", func(t *testing.T) {
		got := selector.Combine(
			selector.Element("div").ID("main"),
			">",
			selector.Combine(
				selector.Element("div"),
				"+",
				selector.Combine(selector.Element("table"), "~", selector.Element("tr")),
			),
		).String()
		if want := "div#main > div + table ~ tr"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("left side combination is dropped", func(t *testing.T) {
		inner := selector.Combine(selector.Element("a"), ">", selector.Element("b"))
		got := selector.Combine(inner, "+", selector.Element("c")).String()
		// inner holds no compound parts of its own, only a combination,
		// which Combine intentionally does not carry over for the left side
		if want := " + c"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("unknown combinator", func(t *testing.T) {
		b := selector.Combine(selector.Element("a"), ">>", selector.Element("b"))
		if !errors.Is(b.Err(), selector.ErrUnknownCombinator) {
			t.Errorf("Err() = %v, want ErrUnknownCombinator", b.Err())
		}
	})

	t.Run("input errors carry over", func(t *testing.T) {
		bad := selector.Class("c").Element("div")
		b := selector.Combine(bad, ">", selector.Element("b"))
		if !errors.Is(b.Err(), selector.ErrInvalidOrder) {
			t.Errorf("Err() = %v, want ErrInvalidOrder carried over", b.Err())
		}
	})
}

func TestFacade_IndependentChains(t *testing.T) {
	a := selector.Element("div")
	b := selector.Element("span").Class("x")
	if got, want := a.String(), "div"; got != want {
		t.Errorf("first chain String() = %q, want %q", got, want)
	}
	if got, want := b.String(), "span.x"; got != want {
		t.Errorf("second chain String() = %q, want %q", got, want)
	}
	if a.Err() != nil || b.Err() != nil {
		t.Errorf("independent chains must not affect each other: %v, %v", a.Err(), b.Err())
	}
}
