// value.go — the Azalea runtime value model and coercion rules.
//
// The coercions here define the language semantics; the evaluator never does
// its own conversions. All of them are total: anything that cannot be
// converted collapses to a zero value rather than failing.

package azalea

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTVoid ValueTag = iota // absence of a value (no payload)
	VTNum                  // float64
	VTText                 // string
	VTBool                 // bool
	VTList                 // []Value
	VTMap                  // map[string]Value
	VTFun                  // *Closure
)

// Value is the universal runtime carrier. Tag determines which Go type Data
// holds (see ValueTag).
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Void is the singleton absent value, returned by default and by failed
// lookups.
var Void = Value{Tag: VTVoid}

// Constructors.
func Num(f float64) Value             { return Value{Tag: VTNum, Data: f} }
func Text(s string) Value             { return Value{Tag: VTText, Data: s} }
func Bool(b bool) Value               { return Value{Tag: VTBool, Data: b} }
func List(xs []Value) Value           { return Value{Tag: VTList, Data: xs} }
func MapVal(m map[string]Value) Value { return Value{Tag: VTMap, Data: m} }
func FunVal(c *Closure) Value         { return Value{Tag: VTFun, Data: c} }

// Closure is a function value: ordered parameter names and a shared reference
// to the body node. Free variables are not captured lexically; they resolve
// dynamically through the caller's scope chain at invocation time.
type Closure struct {
	Params []string
	Body   *Node
}

// AsNumber coerces v to a float64. Text parses as a numeric literal first and
// falls back to the English number-word table; anything unmatched yields 0.
func (v Value) AsNumber() float64 {
	switch v.Tag {
	case VTNum:
		return v.Data.(float64)
	case VTBool:
		if v.Data.(bool) {
			return 1.0
		}
		return 0.0
	case VTText:
		s := v.Data.(string)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		if f, ok := numberWordTable[s]; ok {
			return f
		}
		return 0.0
	default:
		return 0.0
	}
}

// AsBool coerces v to a boolean: numbers test nonzero, text tests nonempty,
// everything else is false.
func (v Value) AsBool() bool {
	switch v.Tag {
	case VTBool:
		return v.Data.(bool)
	case VTNum:
		return v.Data.(float64) != 0.0
	case VTText:
		return v.Data.(string) != ""
	default:
		return false
	}
}

// String renders v for output. Void renders as "void"; lists and maps render
// their elements recursively.
func (v Value) String() string {
	switch v.Tag {
	case VTNum:
		return formatNumber(v.Data.(float64))
	case VTText:
		return v.Data.(string)
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTVoid:
		return "void"
	case VTList:
		xs := v.Data.([]Value)
		parts := make([]string, len(xs))
		for i, x := range xs {
			parts[i] = x.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case VTMap:
		m := v.Data.(map[string]Value)
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + m[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "unknown"
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// equalTolerance is the absolute tolerance the "same" operator uses for
// non-text comparisons.
const equalTolerance = 0.0001

// valuesEqual implements the "same" operator: exact string comparison when
// both sides are text, numeric comparison within tolerance otherwise.
func valuesEqual(a, b Value) bool {
	if a.Tag == VTText && b.Tag == VTText {
		return a.Data.(string) == b.Data.(string)
	}
	return math.Abs(a.AsNumber()-b.AsNumber()) < equalTolerance
}

// wordToNumber resolves a word via the number-word table, then as a numeric
// literal, and finally to 0.
func wordToNumber(word string) float64 {
	if f, ok := numberWordTable[word]; ok {
		return f
	}
	if f, err := strconv.ParseFloat(word, 64); err == nil {
		return f
	}
	return 0.0
}

// numberToWord is the reverse lookup: the first table word within 0.001 of
// num, else the integer rendering of num.
func numberToWord(num float64) string {
	words := make([]string, 0, len(numberWordTable))
	for w := range numberWordTable {
		words = append(words, w)
	}
	sort.Strings(words)
	for _, w := range words {
		if math.Abs(numberWordTable[w]-num) < 0.001 {
			return w
		}
	}
	return strconv.Itoa(int(num))
}
