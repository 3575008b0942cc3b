// value_test.go
package azalea

import "testing"

func Test_Value_AsNumber(t *testing.T) {
	cases := []struct {
		v    Value
		want float64
	}{
		{Num(3.5), 3.5},
		{Bool(true), 1},
		{Bool(false), 0},
		{Text("42"), 42},
		{Text("2.5"), 2.5},
		{Text("seven"), 7},
		{Text("four_g"), 4 * 1024 * 1024 * 1024},
		{Text("nonsense"), 0},
		{Void, 0},
		{List([]Value{Num(1)}), 0},
	}
	for _, c := range cases {
		if got := c.v.AsNumber(); got != c.want {
			t.Fatalf("%#v: want %g, got %g", c.v, c.want, got)
		}
	}
}

func Test_Value_AsBool(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Bool(true), true},
		{Bool(false), false},
		{Num(1), true},
		{Num(0), false},
		{Num(-0.5), true},
		{Text("x"), true},
		{Text(""), false},
		{Void, false},
		{MapVal(map[string]Value{}), false},
	}
	for _, c := range cases {
		if got := c.v.AsBool(); got != c.want {
			t.Fatalf("%#v: want %v, got %v", c.v, c.want, got)
		}
	}
}

func Test_Value_String(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Num(42), "42"},
		{Num(3.5), "3.5"},
		{Num(-0.25), "-0.25"},
		{Text("hi"), "hi"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Void, "void"},
		{List([]Value{Num(1), Text("a"), Void}), "[1, a, void]"},
		{List(nil), "[]"},
		{MapVal(map[string]Value{"b": Num(2), "a": Num(1)}), "{a: 1, b: 2}"},
		{MapVal(nil), "{}"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Fatalf("%#v: want %q, got %q", c.v, c.want, got)
		}
	}
}

func Test_Value_EqualityTolerance(t *testing.T) {
	if !valuesEqual(Num(1), Num(1.00005)) {
		t.Fatal("values within tolerance should compare equal")
	}
	if valuesEqual(Num(1), Num(1.001)) {
		t.Fatal("values outside tolerance should compare unequal")
	}
	if !valuesEqual(Text("a"), Text("a")) {
		t.Fatal("identical text should compare equal")
	}
	if valuesEqual(Text("a"), Text("b")) {
		t.Fatal("different text should compare unequal")
	}
	// mixed text/number falls back to numeric comparison
	if !valuesEqual(Text("3"), Num(3)) {
		t.Fatal(`"3" and 3 should compare equal numerically`)
	}
}

func Test_Value_WordToNumber(t *testing.T) {
	cases := []struct {
		word string
		want float64
	}{
		{"zero", 0},
		{"seven", 7},
		{"nineteen", 19},
		{"ninety", 90},
		{"thousand", 1000},
		{"million", 1000000},
		{"four_zero_zero_zero", 4000},
		{"3.5", 3.5},
		{"unknown", 0},
	}
	for _, c := range cases {
		if got := wordToNumber(c.word); got != c.want {
			t.Fatalf("%q: want %g, got %g", c.word, c.want, got)
		}
	}
}

func Test_Value_NumberToWord(t *testing.T) {
	cases := []struct {
		num  float64
		want string
	}{
		{7, "seven"},
		{1000, "thousand"},
		{4000, "four_zero_zero_zero"},
		{23, "23"},
		{7.0005, "seven"}, // within the reverse-lookup tolerance
	}
	for _, c := range cases {
		if got := numberToWord(c.num); got != c.want {
			t.Fatalf("%g: want %q, got %q", c.num, c.want, got)
		}
	}
}
