package attrparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireAttr(t *testing.T, attrs List, name, value string, kind Kind) {
	t.Helper()
	a, ok := attrs.Lookup(name)
	require.True(t, ok, "attribute %q not found", name)
	assert.Equal(t, value, a.Value, "value of %q", name)
	assert.Equal(t, kind, a.Kind, "kind of %q", name)
}

func TestParseEscapedQuotesKeptVerbatim(t *testing.T) {
	attrs, err := Parse(`b='a\'b\'' d="\"d\"e"`)
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	requireAttr(t, attrs, "b", `a\'b\'`, KindString)
	requireAttr(t, attrs, "d", `\"d\"e`, KindString)
}

func TestParseDoubleQuotes(t *testing.T) {
	attrs, err := Parse(`a="b" c="d" e="f" `)
	require.NoError(t, err)
	require.Len(t, attrs, 3)
	assert.Equal(t, []string{"a", "c", "e"}, attrs.Names())
	requireAttr(t, attrs, "a", "b", KindString)
	requireAttr(t, attrs, "c", "d", KindString)
	requireAttr(t, attrs, "e", "f", KindString)
}

func TestParseSingleQuotes(t *testing.T) {
	attrs, err := Parse(`a='b' c='d' e='f'`)
	require.NoError(t, err)
	require.Len(t, attrs, 3)
	requireAttr(t, attrs, "a", "b", KindString)
	requireAttr(t, attrs, "c", "d", KindString)
	requireAttr(t, attrs, "e", "f", KindString)
}

func TestParseExpressionInsideQuotesIsString(t *testing.T) {
	attrs, err := Parse(`a='#{"a"}' c="#{a}"`)
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	requireAttr(t, attrs, "a", `#{"a"}`, KindString)
	requireAttr(t, attrs, "c", "#{a}", KindString)
}

func TestParseExpressions(t *testing.T) {
	attrs, err := Parse(`a=#{1+1} b=#{"t"} c=#{f.ToString()}`)
	require.NoError(t, err)
	require.Len(t, attrs, 3)
	requireAttr(t, attrs, "a", "1+1", KindDynamic)
	requireAttr(t, attrs, "b", `"t"`, KindDynamic)
	requireAttr(t, attrs, "c", "f.ToString()", KindDynamic)
}

func TestParseExpressionNesting(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`a=#{new {x=1}}`, "new {x=1}"},
		{`a=#{"}"}`, `"}"`},
		{`a=#{'}'}`, `'}'`},
		{`a=#{"\"}"}`, `"\"}"`},
		{`a=#{ spaced out }`, " spaced out "},
		{`a=#{}`, ""},
	}
	for _, tt := range tests {
		attrs, err := Parse(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		require.Len(t, attrs, 1, "input: %s", tt.input)
		assert.Equal(t, KindDynamic, attrs[0].Kind, "input: %s", tt.input)
		assert.Equal(t, tt.want, attrs[0].Value, "input: %s", tt.input)
	}
}

func TestParseOnlyReferences(t *testing.T) {
	attrs, err := Parse("a c e")
	require.NoError(t, err)
	require.Len(t, attrs, 3)
	for _, a := range attrs {
		assert.Equal(t, KindReference, a.Kind)
		assert.Equal(t, a.Name, a.Value)
		assert.True(t, a.IsSelfReference())
	}
}

func TestParseReferenceAsValue(t *testing.T) {
	attrs, err := Parse("a=b c=d e=f")
	require.NoError(t, err)
	require.Len(t, attrs, 3)
	requireAttr(t, attrs, "a", "b", KindReference)
	requireAttr(t, attrs, "c", "d", KindReference)
	requireAttr(t, attrs, "e", "f", KindReference)
	assert.False(t, attrs[0].IsSelfReference())
}

func TestParseSpacesBetweenKeyAndValue(t *testing.T) {
	attrs, err := Parse("a =a b= b c = 'c'  d  =  #{d} ")
	require.NoError(t, err)
	require.Len(t, attrs, 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, attrs.Names())
	requireAttr(t, attrs, "a", "a", KindReference)
	requireAttr(t, attrs, "b", "b", KindReference)
	requireAttr(t, attrs, "c", "c", KindString)
	requireAttr(t, attrs, "d", "d", KindDynamic)
}

func TestParseWhitespaceAroundEqualsIsInsignificant(t *testing.T) {
	tight, err := Parse("a='c'")
	require.NoError(t, err)
	loose, err := Parse("a = 'c'")
	require.NoError(t, err)
	require.Len(t, loose, 1)
	assert.Equal(t, tight[0].Name, loose[0].Name)
	assert.Equal(t, tight[0].Value, loose[0].Value)
	assert.Equal(t, tight[0].Kind, loose[0].Kind)
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n "} {
		attrs, err := Parse(input)
		require.NoError(t, err, "input: %q", input)
		assert.NotNil(t, attrs, "input: %q", input)
		assert.Empty(t, attrs, "input: %q", input)
	}
}

func TestParseDuplicatesArePassedThrough(t *testing.T) {
	attrs, err := Parse("a='1' a='2' a")
	require.NoError(t, err)
	require.Len(t, attrs, 3)
	assert.Equal(t, "1", attrs[0].Value)
	assert.Equal(t, "2", attrs[1].Value)

	last, ok := attrs.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, KindReference, last.Kind)
}

func TestParseIsDeterministic(t *testing.T) {
	input := `id='main' class=#{css} data-x="y" hidden`
	first, err := Parse(input)
	require.NoError(t, err)
	second, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseNamesAndValuesWithPunctuation(t *testing.T) {
	attrs, err := Parse(`xml:lang='en' data-id=item.Id href=a=b`)
	require.NoError(t, err)
	require.Len(t, attrs, 3)
	requireAttr(t, attrs, "xml:lang", "en", KindString)
	requireAttr(t, attrs, "data-id", "item.Id", KindReference)
	requireAttr(t, attrs, "href", "a=b", KindReference)
}

func TestParseQuotedValueMayHoldOtherQuote(t *testing.T) {
	attrs, err := Parse(`a='say "hi"' b="it's"`)
	require.NoError(t, err)
	requireAttr(t, attrs, "a", `say "hi"`, KindString)
	requireAttr(t, attrs, "b", "it's", KindString)
}

func TestParseEscapedBackslashClosesString(t *testing.T) {
	attrs, err := Parse(`a='c:\\' b='x'`)
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	requireAttr(t, attrs, "a", `c:\\`, KindString)
	requireAttr(t, attrs, "b", "x", KindString)
}

func TestParsePositions(t *testing.T) {
	attrs, err := Parse("a='b'  c\n  d=#{e}")
	require.NoError(t, err)
	require.Len(t, attrs, 3)
	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, attrs[0].Pos)
	assert.Equal(t, Position{Line: 1, Column: 8, Offset: 7}, attrs[1].Pos)
	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 11}, attrs[2].Pos)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason Reason
		column int
	}{
		{"empty after equals", ` a= `, MissingValue, 3},
		{"forgotten single quote close", ` a='text `, UnterminatedString, 4},
		{"forgotten single quote open", ` a=text' `, UnexpectedQuote, 8},
		{"forgotten double quote close", ` a="text `, UnterminatedString, 4},
		{"forgotten double quote open", ` a=text" `, UnexpectedQuote, 8},
		{"forgotten dynamic close", ` a=#{text `, UnterminatedExpression, 4},
		{"forgotten dynamic open", ` a=text} `, UnexpectedCloseBrace, 8},
		{"only scheme", ` a: `, DanglingScheme, 3},
		{"scheme on value", `a=b:`, DanglingScheme, 4},
		{"missing name", ` =b`, MissingName, 2},
		{"quote in name", `a'b='c'`, UnexpectedQuote, 2},
		{"brace in name", `a}`, UnexpectedCloseBrace, 2},
		{"bare close brace value", `a=}`, UnexpectedCloseBrace, 3},
		{"escaped closing quote", `a='text\'`, UnterminatedString, 3},
		{"unterminated string in expression", `a=#{"}`, UnterminatedExpression, 3},
		{"unbalanced nested brace", `a=#{ {x }`, UnterminatedExpression, 3},
		{"error after good attributes", `a='b' c=#{d} e=`, MissingValue, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, attrs)

			var se *SyntaxError
			require.True(t, errors.As(err, &se), "error type %T", err)
			assert.Equal(t, tt.reason, se.Reason, "message: %s", se.Message)
			assert.Equal(t, tt.column, se.Pos.Column, "message: %s", se.Message)
			assert.Equal(t, tt.input, se.Fragment)
		})
	}
}

func TestParseErrorMessagesNameTheRule(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{` a= `, "value missing after '='"},
		{` a='text `, "unterminated single-quoted value"},
		{` a="text `, "unterminated double-quoted value"},
		{` a=#{text `, "unterminated expression"},
		{` a=text' `, "unexpected single quote in unquoted value"},
		{` a=text" `, "unexpected double quote in unquoted value"},
		{` a=text} `, "unexpected '}' with no matching '#{'"},
		{` a: `, "dangling ':'"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.input)
		require.Error(t, err, "input: %s", tt.input)
		assert.Contains(t, err.Error(), tt.contains, "input: %s", tt.input)
	}
}

func TestParseErrorsMatchSentinels(t *testing.T) {
	_, err := Parse(` a=#{text `)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnterminatedExpression)
	assert.NotErrorIs(t, err, ErrUnterminatedString)
}

func TestMustParse(t *testing.T) {
	attrs := MustParse("a='b'")
	require.Len(t, attrs, 1)
	assert.Panics(t, func() { MustParse("a=") })
}
