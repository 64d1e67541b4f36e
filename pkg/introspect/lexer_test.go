package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token) []tokenKind {
	out := make([]tokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.kind
	}
	return out
}

func TestLex_BracketsSuppressNewlines(t *testing.T) {
	toks, err := lex("A = [\n  'x',\n  \"y\",\n]\nB = 1\n")
	require.NoError(t, err)

	var newlines int
	for _, tok := range toks {
		if tok.kind == tokNewline {
			newlines++
		}
	}
	assert.Equal(t, 2, newlines)
	assert.Equal(t, "x", toks[3].text)
	assert.Equal(t, 2, toks[3].line)
}

func TestLex_Strings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
		kind tokenKind
	}{
		{"single", `'a'`, "a", tokString},
		{"double_with_escape", `"a\"b"`, `a"b`, tokString},
		{"raw", `r'a\d'`, `a\d`, tokString},
		{"triple", "'''a\nb'''", "a\nb", tokString},
		{"bytes_prefix", `b"x"`, "x", tokString},
		{"fstring", `f"{x}"`, "{x}", tokUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := lex(tt.src)
			require.NoError(t, err)
			require.NotEmpty(t, toks)
			assert.Equal(t, tt.kind, toks[0].kind)
			assert.Equal(t, tt.want, toks[0].text)
		})
	}
}

func TestLex_CommentsAndContinuation(t *testing.T) {
	toks, err := lex("A = 1 + \\\n  2  # trailing\n")
	require.NoError(t, err)
	assert.Equal(t, []tokenKind{tokName, tokOp, tokNumber, tokOp, tokNumber, tokNewline}, kinds(toks))
}

func TestLex_TwoCharOps(t *testing.T) {
	toks, err := lex("A += B")
	require.NoError(t, err)
	assert.True(t, toks[1].is(tokOp, "+="))
}

func TestLex_UnterminatedString(t *testing.T) {
	_, err := lex("A = 'oops\n")
	assert.Error(t, err)
}
