// Package attrparser parses the attribute fragment that follows a tag name in
// a Haml-style template line.
//
// A fragment is a whitespace-separated list of declarations:
//
//	a='b' c="d" e=#{f.ToString()} g=h i
//
// Each declaration becomes an Attribute classified by how its value is
// evaluated at render time:
//
//   - KindString: a single- or double-quoted literal. The stored value is the
//     text between the quotes exactly as written; escape sequences are not
//     decoded (see Attribute.Text for the decode step).
//   - KindDynamic: an embedded expression #{...}. The stored value is the
//     expression source without the delimiters.
//   - KindReference: a bare identifier, either as the value (g=h) or on its
//     own (i), in which case the value equals the name.
//
// Parsing stops at the first malformed construct and returns a *SyntaxError
// whose Reason tells the failing rule apart.
//
// Usage:
//
//	attrs, err := attrparser.Parse(`href='/' title=#{page.Title} selected`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range attrs {
//	    fmt.Println(a.Name, a.Kind, a.Value)
//	}
package attrparser
