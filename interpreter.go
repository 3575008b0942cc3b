// interpreter.go — the Azalea tree-walking evaluator.
//
// All mutable state (globals, function table, scope stack, module registry)
// lives on the Interpreter instance; nothing is process-global. Evaluation is
// strictly synchronous and single-threaded: one node fully completes before
// the next begins. Hosts that want concurrent evaluation must serialize
// access themselves.
//
// The evaluator shares the core's single error policy: it never returns an
// error and never panics. Malformed nodes are size-checked before use and
// produce Void; undefined lookups resolve to Void or are silent no-ops.

package azalea

import (
	"fmt"
	"math"
	"strconv"
)

// Interpreter evaluates Azalea programs. Construct with NewInterpreter (no
// modules registered) or NewRuntime (standard stub modules installed).
type Interpreter struct {
	globals map[string]Value
	funcs   map[string]*Closure
	modules map[string]Module
	scopes  []map[string]Value

	// Print is invoked once per output evaluation (and per repeat) to emit a
	// rendered line to the host. The default writes to standard output.
	Print func(string)
}

// NewInterpreter returns a bare interpreter: empty globals, no functions, and
// no capability modules. Deployments register named modules before execution.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		globals: make(map[string]Value),
		funcs:   make(map[string]*Closure),
		modules: make(map[string]Module),
		Print:   func(s string) { fmt.Println(s) },
	}
}

// RegisterModule installs a capability module under name. Call nodes whose
// target matches a registered name dispatch to the module instead of the
// function table.
func (ip *Interpreter) RegisterModule(name string, m Module) {
	ip.modules[name] = m
}

// Execute tokenizes, parses, and evaluates source, returning the last
// top-level statement's value. It never fails.
func (ip *Interpreter) Execute(source string) Value {
	tokens := NewLexer(source).Tokenize()
	ast := NewParser(tokens).Parse()
	return ip.Evaluate(ast)
}

// ----- scopes -----

func (ip *Interpreter) pushScope() {
	ip.scopes = append(ip.scopes, make(map[string]Value))
}

func (ip *Interpreter) popScope() {
	if len(ip.scopes) > 0 {
		ip.scopes = ip.scopes[:len(ip.scopes)-1]
	}
}

// lookup searches scopes innermost-to-outermost, then globals. Missing names
// resolve to Void.
func (ip *Interpreter) lookup(name string) Value {
	for i := len(ip.scopes) - 1; i >= 0; i-- {
		if v, ok := ip.scopes[i][name]; ok {
			return v
		}
	}
	if v, ok := ip.globals[name]; ok {
		return v
	}
	return Void
}

// declare binds name in the current scope: the innermost active frame, or
// globals when no scope is active.
func (ip *Interpreter) declare(name string, v Value) {
	if len(ip.scopes) > 0 {
		ip.scopes[len(ip.scopes)-1][name] = v
		return
	}
	ip.globals[name] = v
}

// assign overwrites the nearest existing binding of name; with no existing
// binding anywhere it falls back to declaring in the current scope.
func (ip *Interpreter) assign(name string, v Value) {
	for i := len(ip.scopes) - 1; i >= 0; i-- {
		if _, ok := ip.scopes[i][name]; ok {
			ip.scopes[i][name] = v
			return
		}
	}
	if _, ok := ip.globals[name]; ok {
		ip.globals[name] = v
		return
	}
	ip.declare(name, v)
}

// ----- evaluation -----

// Evaluate walks one AST node and returns exactly one Value (Void for
// productions with no explicit result).
func (ip *Interpreter) Evaluate(n *Node) Value {
	if n == nil {
		return Void
	}
	switch n.Kind {
	case ProgramNode:
		result := Void
		for _, child := range n.Children {
			result = ip.Evaluate(child)
		}
		return result

	case BlockNode:
		return ip.evalBlock(n)

	case DeclNode:
		value := Void
		if len(n.Children) > 0 {
			value = ip.Evaluate(n.Children[0])
		}
		if n.Text != "" {
			ip.declare(n.Text, value)
		}
		return value

	case FuncNode:
		return ip.evalFuncDef(n)

	case CallNode:
		return ip.evalCall(n)

	case CondNode:
		if len(n.Children) < 2 {
			return Void
		}
		if ip.Evaluate(n.Children[0]).AsBool() {
			return ip.Evaluate(n.Children[1])
		}
		if len(n.Children) > 2 {
			return ip.Evaluate(n.Children[2])
		}
		return Void

	case LoopNode:
		return ip.evalLoop(n)

	case ReturnNode:
		if len(n.Children) > 0 {
			return ip.Evaluate(n.Children[0])
		}
		return Void

	case OutputNode:
		return ip.evalOutput(n)

	case AssignNode:
		return ip.evalAssign(n)

	case BinaryNode:
		return ip.evalBinary(n)

	case IdentNode:
		return ip.lookup(n.Text)

	case LiteralNode:
		return evalLiteral(n)

	default:
		return Void
	}
}

// evalBlock evaluates children in a fresh scope, returning the last child's
// value. The pop is deferred so the frame is released on any unwind path.
func (ip *Interpreter) evalBlock(n *Node) Value {
	ip.pushScope()
	defer ip.popScope()
	result := Void
	for _, child := range n.Children {
		result = ip.Evaluate(child)
	}
	return result
}

// evalFuncDef builds a closure over the parameter names and the body node
// (shared, not copied), registers it in the global function table, and
// returns it. Free variables resolve against the caller's scope chain at
// invocation time, not here.
func (ip *Interpreter) evalFuncDef(n *Node) Value {
	if len(n.Children) == 0 {
		return Void
	}
	body := n.Children[len(n.Children)-1]
	params := make([]string, 0, len(n.Children)-1)
	for _, child := range n.Children[:len(n.Children)-1] {
		if child.Kind == IdentNode {
			params = append(params, child.Text)
		}
	}
	closure := &Closure{Params: params, Body: body}
	if n.Text != "" {
		ip.funcs[n.Text] = closure
	}
	return FunVal(closure)
}

// evalCall dispatches to a registered module when the target matches one,
// else to the function table. Unknown targets are silent no-ops.
func (ip *Interpreter) evalCall(n *Node) Value {
	if len(n.Children) == 0 {
		return Void
	}
	name := n.Children[0].Text

	if mod, ok := ip.modules[name]; ok && len(n.Children) > 1 {
		method := n.Children[1].Text
		args := make([]Value, 0, len(n.Children)-2)
		for _, child := range n.Children[2:] {
			args = append(args, ip.Evaluate(child))
		}
		return mod.Invoke(method, args)
	}

	fn, ok := ip.funcs[name]
	if !ok {
		return Void
	}
	args := make([]Value, 0, len(n.Children)-1)
	for _, child := range n.Children[1:] {
		args = append(args, ip.Evaluate(child))
	}
	return ip.callClosure(fn, args)
}

// callClosure binds arguments positionally in a fresh frame and evaluates the
// body. Extra arguments are ignored; missing parameters stay unbound and read
// as Void.
func (ip *Interpreter) callClosure(fn *Closure, args []Value) Value {
	ip.pushScope()
	defer ip.popScope()
	for i, param := range fn.Params {
		if i >= len(args) {
			break
		}
		ip.declare(param, args[i])
	}
	return ip.Evaluate(fn.Body)
}

// evalLoop evaluates the count once, then runs floor(count) iterations, each
// in its own scope with `step` bound to the float iteration index. Returns
// the last iteration's value, or Void for zero iterations.
func (ip *Interpreter) evalLoop(n *Node) Value {
	if len(n.Children) < 2 {
		return Void
	}
	count := math.Floor(ip.Evaluate(n.Children[0]).AsNumber())
	result := Void
	for i := 0.0; i < count; i++ {
		result = ip.evalIteration(n.Children[1], i)
	}
	return result
}

func (ip *Interpreter) evalIteration(body *Node, index float64) Value {
	ip.pushScope()
	defer ip.popScope()
	ip.declare("step", Num(index))
	return ip.Evaluate(body)
}

// evalOutput renders the value and prints it once, or repeat-count times when
// a leading count child is present. A label stores the printed value as well.
func (ip *Interpreter) evalOutput(n *Node) Value {
	if len(n.Children) == 0 {
		return Void
	}
	repeats := 1
	expr := n.Children[0]
	if len(n.Children) >= 2 {
		repeats = int(math.Floor(ip.Evaluate(n.Children[0]).AsNumber()))
		expr = n.Children[1]
	}
	value := ip.Evaluate(expr)
	line := value.String()
	for i := 0; i < repeats; i++ {
		ip.Print(line)
	}
	if n.Text != "" {
		ip.declare(n.Text, value)
	}
	return value
}

// evalAssign writes the value to the target; with only a value child it is a
// pass-through returning the value unmodified.
func (ip *Interpreter) evalAssign(n *Node) Value {
	if len(n.Children) == 0 {
		return Void
	}
	value := ip.Evaluate(n.Children[0])
	if len(n.Children) >= 2 && n.Children[1].Kind == IdentNode {
		ip.assign(n.Children[1].Text, value)
	}
	return value
}

// evalBinary implements the reachable operator set. Division and modulo by a
// zero right operand yield 0 rather than failing.
func (ip *Interpreter) evalBinary(n *Node) Value {
	if len(n.Children) < 2 {
		return Void
	}
	left := ip.Evaluate(n.Children[0])
	right := ip.Evaluate(n.Children[1])

	switch n.Text {
	case "plus":
		return Num(left.AsNumber() + right.AsNumber())
	case "minus":
		return Num(left.AsNumber() - right.AsNumber())
	case "times":
		return Num(left.AsNumber() * right.AsNumber())
	case "div":
		r := right.AsNumber()
		if r == 0.0 {
			return Num(0.0)
		}
		return Num(left.AsNumber() / r)
	case "mod":
		r := right.AsNumber()
		if r == 0.0 {
			return Num(0.0)
		}
		return Num(math.Mod(left.AsNumber(), r))
	case "over":
		return Bool(left.AsNumber() > right.AsNumber())
	case "under":
		return Bool(left.AsNumber() < right.AsNumber())
	case "same":
		return Bool(valuesEqual(left, right))
	case "not":
		return Bool(!valuesEqual(left, right))
	case "and":
		return Bool(left.AsBool() && right.AsBool())
	case "or":
		return Bool(left.AsBool() || right.AsBool())
	default:
		return Void
	}
}

// evalLiteral turns a literal token into a Value. Unparseable numbers fall
// back to the number-word table and finally to 0.
func evalLiteral(n *Node) Value {
	switch n.Tok.Kind {
	case NUMBER:
		if f, err := strconv.ParseFloat(n.Text, 64); err == nil {
			return Num(f)
		}
		return Num(wordToNumber(n.Text))
	case STRING:
		return Text(n.Text)
	case KEYWORD:
		switch n.Text {
		case "true":
			return Bool(true)
		case "false":
			return Bool(false)
		}
	}
	return Void
}
