// parser.go — total recursive-descent parser for Azalea.
//
// The grammar is intentionally total: every token stream, however malformed,
// produces some AST and the parser never fails. Recovery is "skip the
// unrecognized token and continue", which keeps the interpreter usable for
// casual, imprecise input at the cost of silently swallowing mistakes.
//
// Ambiguity is resolved two ways: by peeking at following tokens (repeat
// counts, type names, clause introducers) and by a fixed lookup against the
// known element/module name lists when a leading keyword matches no statement
// production (implicit calls).

package azalea

// Parser builds an AST from a token sequence. It exclusively owns the tree it
// constructs; the evaluator holds only shared read access.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a parser over the given tokens. The sequence is expected
// to end with an EOF token (the lexer always provides one).
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token sequence and produces a Program node. It
// never fails.
func (p *Parser) Parse() *Node {
	program := newNode(ProgramNode, p.current())
	for !p.atEnd() {
		if stmt := p.parseStatement(); stmt != nil {
			program.Children = append(program.Children, stmt)
		}
	}
	return program
}

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return Token{Kind: EOF}
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) advance() Token {
	t := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) atEnd() bool { return p.current().Kind == EOF }

// matchWord consumes the current token when it is a keyword belonging to set.
func (p *Parser) matchWord(set wordSet) bool {
	t := p.current()
	if t.Kind == KEYWORD && set.has(t.Lexeme) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) checkWord(set wordSet) bool {
	t := p.current()
	return t.Kind == KEYWORD && set.has(t.Lexeme)
}

// ----- statements -----

// parseStatement parses one statement (or expression) and returns it, or nil
// when the current token was skipped.
func (p *Parser) parseStatement() *Node {
	t := p.current()
	if t.Kind == EOF {
		return nil
	}
	if t.Kind != KEYWORD {
		// numbers, strings, identifiers and stray symbols parse as expressions
		return p.parseExpression()
	}

	w := t.Lexeme
	switch {
	case declWords.has(w):
		return p.parseDeclaration()
	case funcWords.has(w):
		return p.parseFunction()
	case w == "call":
		return p.parseCall()
	case condWords.has(w):
		return p.parseConditional()
	case loopWords.has(w):
		return p.parseLoop()
	case returnWords.has(w):
		return p.parseReturn()
	case outputWords.has(w):
		return p.parseOutput()
	case assignWords.has(w):
		return p.parseAssign()
	case w == "true" || w == "false":
		return p.parseExpression()
	case elementNames.has(w):
		return p.parseImplicitElement()
	case moduleNames.has(w):
		return p.parseImplicitModule()
	default:
		// matches no production and no list; skip it
		p.advance()
		return nil
	}
}

// parseDeclaration handles the declaration family: optional type-name token,
// required variable name, optional assignment introducer, then a value
// expression. With no introducer present, a value is still attempted when a
// non-terminator token follows.
func (p *Parser) parseDeclaration() *Node {
	tok := p.advance()
	node := newNode(DeclNode, tok)

	if t := p.current(); t.Kind == IDENT || t.Kind == KEYWORD {
		name := t.Lexeme
		if t.Kind == KEYWORD && assignIntroWords.has(t.Lexeme) {
			// no name given; leave the declaration unnamed
			name = ""
		} else {
			p.advance()
			if nt := p.current(); nt.Kind == IDENT {
				// first token was a type name; the identifier is the variable
				name = nt.Lexeme
				p.advance()
			}
		}
		node.Text = name
	}

	if p.matchWord(assignIntroWords) {
		node.Children = append(node.Children, p.parseExpression())
	} else if !p.atStatementBoundary() {
		node.Children = append(node.Children, p.parseExpression())
	}
	return node
}

// atStatementBoundary reports whether the current token terminates a
// declaration value position: end of input, a block delimiter, or the start
// of another statement.
func (p *Parser) atStatementBoundary() bool {
	t := p.current()
	if t.Kind == EOF {
		return true
	}
	if t.Kind != KEYWORD {
		return false
	}
	return blockEndWords.has(t.Lexeme) || elseWords.has(t.Lexeme) || isStatementWord(t.Lexeme)
}

// parseFunction handles the function-definition family: name, parameter
// identifiers (comma/semicolon separators tolerated), then a body opened by a
// block-start keyword. Without an opener the body is parsed from whatever
// follows anyway.
func (p *Parser) parseFunction() *Node {
	tok := p.advance()
	node := newNode(FuncNode, tok)

	if t := p.current(); t.Kind == IDENT {
		node.Text = t.Lexeme
		p.advance()
	}

	for !p.atEnd() {
		t := p.current()
		if t.Kind == SYMBOL && (t.Lexeme == "," || t.Lexeme == ";") {
			p.advance()
			continue
		}
		if t.Kind != IDENT {
			break
		}
		node.Children = append(node.Children, identNode(t))
		p.advance()
	}

	p.matchWord(funcBodyStartWords)
	node.Children = append(node.Children, p.parseBlock())
	return node
}

// parseCall handles an explicit `call` statement: target name, then a method
// name when the target is a known module, then greedy argument expressions.
func (p *Parser) parseCall() *Node {
	tok := p.advance()
	node := newNode(CallNode, tok)

	t := p.current()
	if t.Kind != IDENT && t.Kind != KEYWORD {
		return node
	}
	node.Children = append(node.Children, identNode(t))
	p.advance()

	if moduleNames.has(t.Lexeme) {
		if mt := p.current(); mt.Kind == IDENT || mt.Kind == KEYWORD {
			node.Children = append(node.Children, identNode(mt))
			p.advance()
		}
	}

	node.Children = append(node.Children, p.parseArguments(false)...)
	return node
}

// parseArguments consumes argument expressions until end/else or a stopping
// keyword. Implicit calls terminate at any statement keyword so a following
// statement is never swallowed; explicit calls, and clause introducers in
// either form, let the keyword through when the token after it is itself a
// value, in which case it is part of the expression.
func (p *Parser) parseArguments(implicit bool) []*Node {
	var args []*Node
	for !p.atEnd() {
		t := p.current()
		if t.Kind == KEYWORD {
			if blockEndWords.has(t.Lexeme) || elseWords.has(t.Lexeme) {
				break
			}
			if implicit && isStatementWord(t.Lexeme) {
				break
			}
			if clauseIntroWords.has(t.Lexeme) || isStatementWord(t.Lexeme) {
				if !startsValue(p.peekAt(1)) {
					break
				}
			}
		}
		args = append(args, p.parseExpression())
	}
	return args
}

// startsValue reports whether t can begin a primary expression.
func startsValue(t Token) bool {
	switch t.Kind {
	case IDENT, NUMBER, STRING:
		return true
	case KEYWORD:
		return t.Lexeme == "true" || t.Lexeme == "false"
	default:
		return false
	}
}

// parseImplicitElement desugars a statement-initial markup-element keyword
// into a call to the view module.
func (p *Parser) parseImplicitElement() *Node {
	t := p.advance()
	node := newNode(CallNode, t)
	node.Children = append(node.Children,
		&Node{Kind: IdentNode, Text: "view", Tok: t},
		identNode(t))
	node.Children = append(node.Children, p.parseArguments(true)...)
	return node
}

// parseImplicitModule desugars a statement-initial module keyword into a call
// to that module, taking the next word as the method name.
func (p *Parser) parseImplicitModule() *Node {
	t := p.advance()
	node := newNode(CallNode, t)
	node.Children = append(node.Children, identNode(t))
	if mt := p.current(); mt.Kind == IDENT || mt.Kind == KEYWORD {
		node.Children = append(node.Children, identNode(mt))
		p.advance()
	}
	node.Children = append(node.Children, p.parseArguments(true)...)
	return node
}

// parseConditional handles the conditional family: condition, then-block
// opened by a block-start keyword, optional else/otherwise block.
func (p *Parser) parseConditional() *Node {
	tok := p.advance()
	node := newNode(CondNode, tok)
	node.Children = append(node.Children, p.parseExpression())

	if p.matchWord(blockStartWords) {
		node.Children = append(node.Children, p.parseBlock())
	}
	if p.matchWord(elseWords) {
		p.matchWord(blockStartWords)
		node.Children = append(node.Children, p.parseBlock())
	}
	return node
}

// parseLoop handles the loop family: a count expression and a body block.
func (p *Parser) parseLoop() *Node {
	tok := p.advance()
	node := newNode(LoopNode, tok)
	node.Children = append(node.Children, p.parseExpression())
	p.matchWord(blockStartWords)
	node.Children = append(node.Children, p.parseBlock())
	return node
}

func (p *Parser) parseReturn() *Node {
	tok := p.advance()
	node := newNode(ReturnNode, tok)
	node.Children = append(node.Children, p.parseExpression())
	return node
}

// parseOutput handles the output family. A leading number is a repeat count
// only when the token after it starts a fresh value; a trailing `name "..."`
// clause records a label under which the printed value is also stored.
func (p *Parser) parseOutput() *Node {
	tok := p.advance()
	node := newNode(OutputNode, tok)

	if t := p.current(); t.Kind == NUMBER && startsValue(p.peekAt(1)) {
		node.Children = append(node.Children, literalNode(t))
		p.advance()
	}
	node.Children = append(node.Children, p.parseExpression())

	if t := p.current(); t.Kind == KEYWORD && t.Lexeme == "name" && p.peekAt(1).Kind == STRING {
		p.advance()
		node.Text = p.advance().Lexeme
	}
	return node
}

// parseAssign handles the assignment family: a value expression, then either
// `to <name>` or a bare identifier as the target.
func (p *Parser) parseAssign() *Node {
	tok := p.advance()
	node := newNode(AssignNode, tok)
	node.Children = append(node.Children, p.parseExpression())

	if t := p.current(); t.Kind == KEYWORD && t.Lexeme == "to" {
		p.advance()
		if it := p.current(); it.Kind == IDENT {
			node.Children = append(node.Children, identNode(it))
			p.advance()
		}
	} else if t.Kind == IDENT {
		node.Children = append(node.Children, identNode(t))
		p.advance()
	}
	return node
}

// parseBlock parses statements until a block-end keyword or end of input.
func (p *Parser) parseBlock() *Node {
	node := newNode(BlockNode, p.current())
	for !p.atEnd() {
		if p.matchWord(blockEndWords) {
			break
		}
		if p.checkWord(elseWords) {
			break
		}
		if stmt := p.parseStatement(); stmt != nil {
			node.Children = append(node.Children, stmt)
		}
	}
	return node
}

// ----- expressions -----

func (p *Parser) parseExpression() *Node {
	return p.parseBinary(0)
}

// parseBinary is standard precedence climbing over the operator table.
func (p *Parser) parseBinary(minPrec int) *Node {
	left := p.parsePrimary()
	for {
		t := p.current()
		if t.Kind != KEYWORD {
			break
		}
		prec, ok := opPrecedence[t.Lexeme]
		if !ok || prec < minPrec {
			break
		}
		p.advance()
		right := p.parseBinary(prec + 1)
		op := &Node{Kind: BinaryNode, Text: t.Lexeme, Tok: t, Children: []*Node{left, right}}
		left = op
	}
	return left
}

// parsePrimary parses a leaf: number, string, identifier, or true/false. Any
// other keyword in expression position is conservatively treated as an
// identifier reference; the parser never fails here.
func (p *Parser) parsePrimary() *Node {
	t := p.current()
	switch t.Kind {
	case NUMBER, STRING:
		p.advance()
		return literalNode(t)
	case IDENT:
		p.advance()
		return identNode(t)
	case KEYWORD:
		if t.Lexeme == "true" || t.Lexeme == "false" {
			p.advance()
			return literalNode(t)
		}
		p.advance()
		return identNode(t)
	case EOF:
		return identNode(t)
	default:
		// stray symbol; treat as an identifier reference
		p.advance()
		return identNode(t)
	}
}
