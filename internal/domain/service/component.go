package service

import "strings"

// Component is a base service plus the extras applied to it, in application
// order. It is an immutable value: wrapping returns a new Component.
type Component struct {
	kind   Kind
	extras []Extra
}

// Line is one row of a component's price breakdown.
type Line struct {
	Description string
	Price       int
	Duration    int
}

func CreateBase(kind Kind) (Component, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Component{}, err
	}
	return Component{kind: kind}, nil
}

// WrapWithExtra appends extra to c. Unknown extras leave c unchanged.
func WrapWithExtra(c Component, extra Extra) Component {
	if !extra.IsValid() {
		return c
	}
	extras := make([]Extra, len(c.extras), len(c.extras)+1)
	copy(extras, c.extras)
	return Component{
		kind:   c.kind,
		extras: append(extras, extra),
	}
}

// Build creates the base service and applies extras left to right.
func Build(kind Kind, extras ...Extra) (Component, error) {
	c, err := CreateBase(kind)
	if err != nil {
		return Component{}, err
	}
	for _, e := range extras {
		c = WrapWithExtra(c, e)
	}
	return c, nil
}

func (c Component) Describe() string {
	var b strings.Builder
	b.WriteString(c.kind.Description())
	for _, e := range c.extras {
		b.WriteString(e.Suffix())
	}
	return b.String()
}

func (c Component) Price() int {
	total := c.kind.Price()
	for _, e := range c.extras {
		total += e.Price()
	}
	return total
}

func (c Component) Duration() int {
	total := c.kind.Duration()
	for _, e := range c.extras {
		total += e.Duration()
	}
	return total
}

func (c Component) Lines() []Line {
	lines := make([]Line, 0, len(c.extras)+1)
	lines = append(lines, Line{
		Description: c.kind.Description(),
		Price:       c.kind.Price(),
		Duration:    c.kind.Duration(),
	})
	for _, e := range c.extras {
		lines = append(lines, Line{
			Description: e.Label(),
			Price:       e.Price(),
			Duration:    e.Duration(),
		})
	}
	return lines
}

func (c Component) Kind() Kind { return c.kind }

func (c Component) Extras() []Extra {
	out := make([]Extra, len(c.extras))
	copy(out, c.extras)
	return out
}
