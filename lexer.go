// lexer.go — total tokenizer for Azalea source text.
//
// The tokenizer never fails: unrecognized characters are skipped, and
// unterminated strings or block comments silently consume the rest of the
// input. Every scan ends with exactly one EOF token.

package azalea

// TokenKind classifies a lexical token. Classification happens once, at lex
// time, against the fixed keyword vocabulary; it never changes later.
type TokenKind int

const (
	EOF TokenKind = iota
	KEYWORD
	IDENT
	NUMBER
	STRING
	SYMBOL
)

func (k TokenKind) String() string {
	switch k {
	case EOF:
		return "eof"
	case KEYWORD:
		return "keyword"
	case IDENT:
		return "ident"
	case NUMBER:
		return "number"
	case STRING:
		return "string"
	case SYMBOL:
		return "symbol"
	default:
		return "unknown"
	}
}

// Token is an immutable lexical token with its source position (1-based line
// and column of the token start).
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Col    int
}

// symbolChars is the only punctuation the tokenizer emits. Operators must be
// spelled as keywords (plus, over, div, ...); arithmetic and comparison
// punctuation is silently dropped.
const symbolChars = ".,/?!;"

// Lexer scans an Azalea source string into tokens.
type Lexer struct {
	src  string
	pos  int
	line int
	col  int
}

// NewLexer creates a lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

func (l *Lexer) isAtEnd() bool { return l.pos >= len(l.src) }

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() && isSpace(l.peek()) {
		l.advance()
	}
}

// skipComment consumes a // line comment or a /* */ block comment. An
// unterminated block comment runs to end of input.
func (l *Lexer) skipComment() {
	if l.peekNext() == '/' {
		for !l.isAtEnd() && l.peek() != '\n' {
			l.advance()
		}
		return
	}
	// block comment
	l.advance()
	l.advance()
	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
}

// readNumber consumes digits with at most one decimal point. A second dot
// terminates the literal early and is left for the next token.
func (l *Lexer) readNumber() Token {
	line, col := l.line, l.col
	start := l.pos
	sawDot := false
	for !l.isAtEnd() {
		ch := l.peek()
		if isDigit(ch) {
			l.advance()
			continue
		}
		if ch == '.' && !sawDot {
			sawDot = true
			l.advance()
			continue
		}
		break
	}
	return Token{Kind: NUMBER, Lexeme: l.src[start:l.pos], Line: line, Col: col}
}

// readString consumes a double-quoted literal. A backslash swallows the
// following character verbatim (both bytes stay in the lexeme; no unescaping
// is performed). An unterminated string consumes to end of input.
func (l *Lexer) readString() Token {
	line, col := l.line, l.col
	l.advance() // opening quote
	start := l.pos
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\\' && l.pos+1 < len(l.src) {
			l.advance()
		}
		l.advance()
	}
	lex := l.src[start:l.pos]
	if !l.isAtEnd() {
		l.advance() // closing quote
	}
	return Token{Kind: STRING, Lexeme: lex, Line: line, Col: col}
}

// readWord consumes an identifier-shaped lexeme and classifies it against the
// fixed keyword vocabulary.
func (l *Lexer) readWord() Token {
	line, col := l.line, l.col
	start := l.pos
	for !l.isAtEnd() && isWordChar(l.peek()) {
		l.advance()
	}
	lex := l.src[start:l.pos]
	kind := IDENT
	if keywordSet.has(lex) {
		kind = KEYWORD
	}
	return Token{Kind: kind, Lexeme: lex, Line: line, Col: col}
}

func (l *Lexer) readSymbol() Token {
	line, col := l.line, l.col
	ch := l.advance()
	return Token{Kind: SYMBOL, Lexeme: string(ch), Line: line, Col: col}
}

// Tokenize scans the whole source. It never fails; the result always ends
// with exactly one EOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		l.skipWhitespace()
		if l.isAtEnd() {
			break
		}
		ch := l.peek()
		switch {
		case ch == '/' && (l.peekNext() == '/' || l.peekNext() == '*'):
			l.skipComment()
		case isDigit(ch):
			tokens = append(tokens, l.readNumber())
		case ch == '"':
			tokens = append(tokens, l.readString())
		case isAlpha(ch):
			tokens = append(tokens, l.readWord())
		case isSymbolChar(ch):
			tokens = append(tokens, l.readSymbol())
		default:
			// not part of the language; skip
			l.advance()
		}
	}
	tokens = append(tokens, Token{Kind: EOF, Line: l.line, Col: l.col})
	return tokens
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
func isWordChar(b byte) bool { return isAlpha(b) || isDigit(b) }
func isSymbolChar(b byte) bool {
	for i := 0; i < len(symbolChars); i++ {
		if symbolChars[i] == b {
			return true
		}
	}
	return false
}
