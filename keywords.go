// keywords.go — synonym tables shared by the lexer and the parser.
//
// Azalea is deliberately synonym-rich: each statement form is reachable
// through a family of interchangeable spellings, so casual phrasing like
// "make total from 3 plus 4" and "let total = 3 plus 4" parse to the same
// tree. The tables below are the single source of truth for that mapping.
// The lexer only consults the union (keywordSet) to classify identifiers;
// the parser consults the individual families.

package azalea

// wordSet is a membership set over keyword spellings.
type wordSet map[string]bool

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}

func (s wordSet) has(w string) bool { return s[w] }

// Statement keyword families. One canonical production per family.
var (
	declWords   = newWordSet("form", "let", "var", "const", "set", "create", "make", "declare", "define", "init", "new")
	funcWords   = newWordSet("act", "def", "fn", "func", "function", "method", "procedure")
	condWords   = newWordSet("if", "when", "whenever", "provided", "assuming", "given")
	loopWords   = newWordSet("loop", "while", "for", "repeat", "each", "foreach", "iterate")
	returnWords = newWordSet("give", "return", "yield", "send")
	outputWords = newWordSet("say", "print", "output", "display", "log", "echo", "show", "write")
	assignWords = newWordSet("put", "assign", "update")
)

// Assignment introducers inside a declaration. "=" is listed for completeness
// but the tokenizer's punctuation set never produces it.
var assignIntroWords = newWordSet("from", "is", "equals", "to", "as", "becomes", "=")

// Block delimiters. "{" and "}" likewise never survive tokenization.
var (
	blockStartWords = newWordSet("do", "then", "begin", "{")
	blockEndWords   = newWordSet("end", "finish", "done", "}")
	elseWords       = newWordSet("else", "otherwise")
)

// Function bodies additionally accept "when" as an opener.
var funcBodyStartWords = newWordSet("do", "then", "when", "begin", "{")

// Clause introducers that terminate greedy argument parsing.
var clauseIntroWords = newWordSet("with", "to", "on", "put", "give")

// opPrecedence wires binary operators into the expression grammar. Keywords
// absent from this table never participate as infix operators, whatever other
// alias lists suggest.
var opPrecedence = map[string]int{
	"or":    1,
	"and":   2,
	"same":  3,
	"not":   3,
	"over":  4,
	"under": 4,
	"plus":  5,
	"minus": 5,
	"times": 6,
	"div":   6,
	"mod":   6,
}

// Known markup-element names. A statement-initial keyword from this list is
// desugared into an implicit call to the "view" module.
var elementNames = newWordSet(
	"button", "btn", "input", "field", "image", "img", "label",
	"text", "pane", "div", "box", "ul", "render", "style", "css",
)

// Known capability-module names. A statement-initial keyword from this list
// is desugared into an implicit call to that module.
var moduleNames = newWordSet("net", "file", "vm", "serve", "view", "play")

// Remaining vocabulary: literals, clause words, and module method names that
// are keywords without being wired to any statement family.
var miscWords = []string{
	"true", "false", "and", "or", "not", "same", "over", "under",
	"plus", "minus", "times", "div", "mod",
	"with", "on", "name",
	"num", "list", "map", "bool", "void",
	"read", "start", "route", "post", "delete", "del",
	"static", "files", "json", "game", "sprite",
}

// keywordSet is the full fixed vocabulary the lexer classifies against.
var keywordSet = buildKeywordSet()

func buildKeywordSet() wordSet {
	s := make(wordSet)
	for _, family := range []wordSet{
		declWords, funcWords, condWords, loopWords, returnWords,
		outputWords, assignWords, assignIntroWords,
		blockStartWords, blockEndWords, elseWords, funcBodyStartWords,
		clauseIntroWords, elementNames, moduleNames,
	} {
		for w := range family {
			s[w] = true
		}
	}
	s["call"] = true
	for _, w := range miscWords {
		s[w] = true
	}
	// Punctuation-shaped entries can never be produced as identifiers.
	delete(s, "=")
	delete(s, "{")
	delete(s, "}")
	return s
}

// isStatementWord reports whether w opens any statement production.
func isStatementWord(w string) bool {
	return declWords.has(w) || funcWords.has(w) || condWords.has(w) ||
		loopWords.has(w) || returnWords.has(w) || outputWords.has(w) ||
		assignWords.has(w) || w == "call"
}

// English number words recognized by the text→number coercion, plus two
// bespoke byte-size tokens carried over from the original vocabulary.
var numberWordTable = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
	"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
	"eighteen": 18, "nineteen": 19, "twenty": 20, "thirty": 30,
	"forty": 40, "fifty": 50, "sixty": 60, "seventy": 70,
	"eighty": 80, "ninety": 90, "hundred": 100, "thousand": 1000,
	"million":             1000000,
	"four_zero_zero_zero": 4000,
	"four_g":              4 * 1024 * 1024 * 1024,
}
