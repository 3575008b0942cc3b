// lexer_test.go
package azalea

import (
	"reflect"
	"testing"
)

// --- helpers ---------------------------------------------------------------

func scan(t *testing.T, src string) []Token {
	t.Helper()
	return NewLexer(src).Tokenize()
}

func kindsWithoutEOF(tokens []Token) []TokenKind {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Kind == EOF {
		end--
	}
	out := make([]TokenKind, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Kind)
	}
	return out
}

func wantKinds(t *testing.T, src string, want []TokenKind) []Token {
	t.Helper()
	got := scan(t, src)
	gotKinds := kindsWithoutEOF(got)
	if !reflect.DeepEqual(gotKinds, want) {
		t.Fatalf("\nsource:\n%s\nwant kinds:\n%v\ngot kinds:\n%v\n", src, want, gotKinds)
	}
	return got
}

func wantLexemes(t *testing.T, tokens []Token, want ...string) {
	t.Helper()
	got := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == EOF {
			break
		}
		got = append(got, tok.Lexeme)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want lexemes %v, got %v", want, got)
	}
}

// --- scanning --------------------------------------------------------------

func Test_Lexer_Declaration(t *testing.T) {
	toks := wantKinds(t, `form total from 3 plus 4`,
		[]TokenKind{KEYWORD, IDENT, KEYWORD, NUMBER, KEYWORD, NUMBER})
	wantLexemes(t, toks, "form", "total", "from", "3", "plus", "4")
}

func Test_Lexer_AlwaysEndsWithSingleEOF(t *testing.T) {
	for _, src := range []string{"", "   ", "say 1", "/* open", `"open`, "@#$%"} {
		toks := scan(t, src)
		if len(toks) == 0 || toks[len(toks)-1].Kind != EOF {
			t.Fatalf("source %q: missing trailing EOF: %v", src, toks)
		}
		for _, tok := range toks[:len(toks)-1] {
			if tok.Kind == EOF {
				t.Fatalf("source %q: interior EOF token: %v", src, toks)
			}
		}
	}
}

func Test_Lexer_KeywordClassification(t *testing.T) {
	toks := scan(t, `say total step button net name`)
	wantKind := []TokenKind{KEYWORD, IDENT, IDENT, KEYWORD, KEYWORD, KEYWORD}
	got := kindsWithoutEOF(toks)
	if !reflect.DeepEqual(got, wantKind) {
		t.Fatalf("want %v, got %v", wantKind, got)
	}
}

func Test_Lexer_StringLiteral(t *testing.T) {
	toks := wantKinds(t, `say "hello world"`, []TokenKind{KEYWORD, STRING})
	if toks[1].Lexeme != "hello world" {
		t.Fatalf("want lexeme without quotes, got %q", toks[1].Lexeme)
	}
}

func Test_Lexer_StringEscapeKeptVerbatim(t *testing.T) {
	toks := scan(t, `"a\"b"`)
	if toks[0].Kind != STRING || toks[0].Lexeme != `a\"b` {
		t.Fatalf("want raw escape in lexeme, got %#v", toks[0])
	}
}

func Test_Lexer_UnterminatedStringRunsToEnd(t *testing.T) {
	toks := scan(t, `say "never closed
form x from 1`)
	if toks[1].Kind != STRING {
		t.Fatalf("want STRING, got %v", toks[1])
	}
	if toks[2].Kind != EOF {
		t.Fatalf("want everything consumed by the open string, got %v", toks[2:])
	}
}

func Test_Lexer_NumberSecondDotTerminates(t *testing.T) {
	toks := wantKinds(t, `1.2.3`, []TokenKind{NUMBER, SYMBOL, NUMBER})
	wantLexemes(t, toks, "1.2", ".", "3")
}

func Test_Lexer_TrailingDotStaysInNumber(t *testing.T) {
	toks := scan(t, `12.`)
	if toks[0].Lexeme != "12." {
		t.Fatalf("want %q, got %q", "12.", toks[0].Lexeme)
	}
}

func Test_Lexer_Comments(t *testing.T) {
	toks := wantKinds(t, `say 1 // trailing comment
say /* inline */ 2`,
		[]TokenKind{KEYWORD, NUMBER, KEYWORD, NUMBER})
	wantLexemes(t, toks, "say", "1", "say", "2")
}

func Test_Lexer_UnterminatedBlockCommentRunsToEnd(t *testing.T) {
	toks := scan(t, `say 1 /* open
say 2`)
	wantLexemes(t, toks, "say", "1")
}

func Test_Lexer_SlashAloneIsASymbol(t *testing.T) {
	toks := wantKinds(t, `a / b`, []TokenKind{IDENT, SYMBOL, IDENT})
	if toks[1].Lexeme != "/" {
		t.Fatalf("want symbol /, got %q", toks[1].Lexeme)
	}
}

func Test_Lexer_SymbolSet(t *testing.T) {
	toks := scan(t, `.,/?!;`)
	wantLexemes(t, toks, ".", ",", "/", "?", "!", ";")
	for _, tok := range toks[:len(toks)-1] {
		if tok.Kind != SYMBOL {
			t.Fatalf("want SYMBOL, got %v", tok)
		}
	}
}

func Test_Lexer_ForeignPunctuationDropped(t *testing.T) {
	toks := wantKinds(t, `x = (3 + 4) * 2`, []TokenKind{IDENT, NUMBER, NUMBER, NUMBER})
	wantLexemes(t, toks, "x", "3", "4", "2")
}

func Test_Lexer_Positions(t *testing.T) {
	toks := scan(t, "say 1\n  form x")
	want := []struct {
		line, col int
	}{
		{1, 1}, {1, 5}, {2, 3}, {2, 8},
	}
	for i, w := range want {
		if toks[i].Line != w.line || toks[i].Col != w.col {
			t.Fatalf("token %d (%q): want %d:%d, got %d:%d",
				i, toks[i].Lexeme, w.line, w.col, toks[i].Line, toks[i].Col)
		}
	}
}

func Test_Lexer_UnderscoreWordsAreSingleTokens(t *testing.T) {
	toks := scan(t, `four_zero_zero_zero four_g`)
	wantLexemes(t, toks, "four_zero_zero_zero", "four_g")
}
