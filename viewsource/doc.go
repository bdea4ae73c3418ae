// Package viewsource describes where template text comes from.
//
// A Source identifies one template by path, file name and timestamp and
// hands out its text. The compiler derives the generated class name from
// the path (see ClassNameFor) unless the source carries an explicit name.
//
// Attribute fragment files, one fragment per line, are read with
// ReadFragments so a failing fragment can be reported with its line.
package viewsource
