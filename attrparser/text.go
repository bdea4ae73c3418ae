package attrparser

import "strings"

// Text returns the attribute value ready for literal output. For KindString
// it decodes the escapes the quoting allowed (\' \" \\ \n \t); any other
// backslash sequence is kept as written. Dynamic and reference values are
// returned unchanged since they are source text, not literals.
func (a Attribute) Text() string {
	if a.Kind != KindString || !strings.ContainsRune(a.Value, '\\') {
		return a.Value
	}

	var sb strings.Builder
	sb.Grow(len(a.Value))
	for i := 0; i < len(a.Value); i++ {
		ch := a.Value[i]
		if ch != '\\' || i+1 >= len(a.Value) {
			sb.WriteByte(ch)
			continue
		}
		i++
		switch esc := a.Value[i]; esc {
		case '\'':
			sb.WriteByte('\'')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		default:
			// Preserve unknown escapes as-is
			sb.WriteByte('\\')
			sb.WriteByte(esc)
		}
	}
	return sb.String()
}
