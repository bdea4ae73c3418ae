package attrparser

import "strings"

// Position tracks a location inside a fragment.
type Position struct {
	Line   int `json:"line" yaml:"line"`     // 1-based line number
	Column int `json:"column" yaml:"column"` // 1-based column number
	Offset int `json:"offset" yaml:"offset"` // 0-based byte offset into the fragment
}

// Kind tells how an attribute value is evaluated at render time.
type Kind string

const (
	KindString    Kind = "string"    // quoted literal text
	KindDynamic   Kind = "dynamic"   // #{...} expression source
	KindReference Kind = "reference" // variable name resolved at render time
)

// Attribute is one name[=value] declaration from a fragment.
type Attribute struct {
	Name  string   `json:"name" yaml:"name"`
	Value string   `json:"value" yaml:"value"` // raw text as written, escapes not decoded
	Kind  Kind     `json:"kind" yaml:"kind"`
	Pos   Position `json:"pos" yaml:"pos"` // start of the name
}

// IsSelfReference reports whether the attribute was written as a bare name.
func (a Attribute) IsSelfReference() bool {
	return a.Kind == KindReference && a.Value == a.Name
}

// String renders the declaration back into fragment syntax.
func (a Attribute) String() string {
	switch a.Kind {
	case KindString:
		// The raw value never holds an unescaped quote of the kind that
		// delimited it, so pick the delimiter the value escapes or avoids.
		q := "'"
		if strings.Contains(unescapedQuotes(a.Value), "'") {
			q = `"`
		}
		return a.Name + "=" + q + a.Value + q
	case KindDynamic:
		return a.Name + "=#{" + a.Value + "}"
	default:
		if a.Value == a.Name {
			return a.Name
		}
		return a.Name + "=" + a.Value
	}
}

// unescapedQuotes drops every backslash pair so only bare quotes remain.
func unescapedQuotes(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' {
			i++
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

// List holds attributes in declaration order. Repeated names are kept.
type List []Attribute

// Lookup returns the last attribute declared with the given name.
func (l List) Lookup(name string) (Attribute, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Name == name {
			return l[i], true
		}
	}
	return Attribute{}, false
}

// Names returns the attribute names in declaration order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, a := range l {
		names[i] = a.Name
	}
	return names
}

// String renders the list as a fragment, one space between declarations.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, a := range l {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}
