// ast.go — the Azalea abstract syntax tree.
//
// Nodes are built once by the parser and never mutated afterwards. The
// evaluator holds only shared read access: a function body node is referenced
// by its closure and re-evaluated on every call, so it outlives the statement
// that defined it.

package azalea

// NodeKind discriminates AST nodes.
type NodeKind int

const (
	ProgramNode NodeKind = iota
	DeclNode
	FuncNode
	CallNode
	CondNode
	LoopNode
	ReturnNode
	OutputNode
	AssignNode
	BinaryNode
	IdentNode
	LiteralNode
	BlockNode
)

func (k NodeKind) String() string {
	switch k {
	case ProgramNode:
		return "program"
	case DeclNode:
		return "decl"
	case FuncNode:
		return "func"
	case CallNode:
		return "call"
	case CondNode:
		return "cond"
	case LoopNode:
		return "loop"
	case ReturnNode:
		return "return"
	case OutputNode:
		return "output"
	case AssignNode:
		return "assign"
	case BinaryNode:
		return "binary"
	case IdentNode:
		return "ident"
	case LiteralNode:
		return "literal"
	case BlockNode:
		return "block"
	default:
		return "unknown"
	}
}

// Node is a tagged AST node. Child order is semantically meaningful:
//
//	DeclNode:    [value?]                      Text = declared name
//	FuncNode:    [param idents..., body]       Text = function name
//	CallNode:    [target, method?, args...]
//	CondNode:    [condition, then, else?]
//	LoopNode:    [count, body]
//	ReturnNode:  [value]
//	OutputNode:  [expr] or [count, expr]       Text = optional label
//	AssignNode:  [value, target?]
//	BinaryNode:  [left, right]                 Text = operator keyword
//	IdentNode:   —                             Text = name
//	LiteralNode: —                             Tok carries the literal
type Node struct {
	Kind     NodeKind
	Text     string
	Tok      Token
	Children []*Node
}

func newNode(kind NodeKind, tok Token, children ...*Node) *Node {
	return &Node{Kind: kind, Tok: tok, Children: children}
}

func identNode(tok Token) *Node {
	return &Node{Kind: IdentNode, Text: tok.Lexeme, Tok: tok}
}

func literalNode(tok Token) *Node {
	return &Node{Kind: LiteralNode, Text: tok.Lexeme, Tok: tok}
}
