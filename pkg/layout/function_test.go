package layout

import (
	"math"
	"testing"
)

// functionFixture returns the six-segment function used by the printer and
// lookup tests. The layout is an empty line item; it does not matter here.
func functionFixture() Function {
	layout := NewTree(Item{Kind: LineType})
	return Function{
		{Column: 0, Layout: layout, Span: 10, Intercept: 101.0, Gradient: 11},
		{Column: 1, Layout: layout, Span: 20, Intercept: 202.0, Gradient: 22},
		{Column: 2, Layout: layout, Span: 30, Intercept: 303.0, Gradient: 33},
		{Column: 3, Layout: layout, Span: 40, Intercept: 404.0, Gradient: 44},
		{Column: 40, Layout: layout, Span: 50, Intercept: 505.0, Gradient: 55},
		{Column: 50, Layout: layout, Span: 60, Intercept: 606.0, Gradient: 66},
	}
}

func TestSegmentString(t *testing.T) {
	f := functionFixture()

	want0 := "[  0] (101.000 + 11*x), span: 10, layout:\n" +
		"      { ([  ], length: 0, indentation: 0, spacing: 0, must wrap: no) }"
	if got := f[0].String(); got != want0 {
		t.Errorf("segment[0].String() =\n%q\nwant\n%q", got, want0)
	}

	want5 := "[ 50] (606.000 + 66*x), span: 60, layout:\n" +
		"      { ([  ], length: 0, indentation: 0, spacing: 0, must wrap: no) }"
	if got := f[5].String(); got != want5 {
		t.Errorf("segment[5].String() =\n%q\nwant\n%q", got, want5)
	}
}

func TestFunctionString(t *testing.T) {
	f := functionFixture()

	want := "{\n" +
		"  [  0] ( 101.000 +   11*x), span:  10, layout:\n" +
		"        { ([  ], length: 0, indentation: 0, spacing: 0, must wrap: no) }\n" +
		"  [  1] ( 202.000 +   22*x), span:  20, layout:\n" +
		"        { ([  ], length: 0, indentation: 0, spacing: 0, must wrap: no) }\n" +
		"  [  2] ( 303.000 +   33*x), span:  30, layout:\n" +
		"        { ([  ], length: 0, indentation: 0, spacing: 0, must wrap: no) }\n" +
		"  [  3] ( 404.000 +   44*x), span:  40, layout:\n" +
		"        { ([  ], length: 0, indentation: 0, spacing: 0, must wrap: no) }\n" +
		"  [ 40] ( 505.000 +   55*x), span:  50, layout:\n" +
		"        { ([  ], length: 0, indentation: 0, spacing: 0, must wrap: no) }\n" +
		"  [ 50] ( 606.000 +   66*x), span:  60, layout:\n" +
		"        { ([  ], length: 0, indentation: 0, spacing: 0, must wrap: no) }\n" +
		"}"
	if got := f.String(); got != want {
		t.Errorf("Function.String() =\n%s\nwant:\n%s", got, want)
	}

	if got := (Function{}).String(); got != "{}" {
		t.Errorf("empty Function.String() = %q, want %q", got, "{}")
	}
}

func TestAtOrToTheLeftOf(t *testing.T) {
	f := functionFixture()

	tests := []struct {
		column int
		want   int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
	}
	for _, tt := range tests {
		if got := f.AtOrToTheLeftOf(tt.column); got != tt.want {
			t.Errorf("AtOrToTheLeftOf(%d) = %d, want %d", tt.column, got, tt.want)
		}
	}
	for column := 3; column < 40; column++ {
		if got := f.AtOrToTheLeftOf(column); got != 3 {
			t.Errorf("AtOrToTheLeftOf(%d) = %d, want 3", column, got)
		}
	}
	for column := 40; column < 50; column++ {
		if got := f.AtOrToTheLeftOf(column); got != 4 {
			t.Errorf("AtOrToTheLeftOf(%d) = %d, want 4", column, got)
		}
	}
	for _, column := range []int{50, 51, 70, 1000} {
		if got := f.AtOrToTheLeftOf(column); got != 5 {
			t.Errorf("AtOrToTheLeftOf(%d) = %d, want 5", column, got)
		}
	}
}

func TestAtOrToTheLeftOfEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AtOrToTheLeftOf on an empty function did not panic")
		}
	}()
	_ = (Function{}).AtOrToTheLeftOf(0)
}

func TestSegmentCostAt(t *testing.T) {
	s := Segment{Column: 10, Intercept: 100.0, Gradient: 3}

	tests := []struct {
		column int
		want   float64
	}{
		{10, 100.0},
		{11, 103.0},
		{20, 130.0},
	}
	for _, tt := range tests {
		if got := s.CostAt(tt.column); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CostAt(%d) = %v, want %v", tt.column, got, tt.want)
		}
	}
}

func TestFunctionCostAt(t *testing.T) {
	f := functionFixture()

	tests := []struct {
		column int
		want   float64
	}{
		{0, 101.0},
		{1, 202.0},
		{5, 404.0 + 2*44.0},
		{45, 505.0 + 5*55.0},
	}
	for _, tt := range tests {
		if got := f.CostAt(tt.column); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CostAt(%d) = %v, want %v", tt.column, got, tt.want)
		}
	}
}

func TestFunctionMustWrap(t *testing.T) {
	if (Function{}).MustWrap() {
		t.Error("empty function MustWrap() = true, want false")
	}

	wrapping := Function{{Layout: NewTree(CompositeItem(StackType, 0, true))}}
	if !wrapping.MustWrap() {
		t.Error("MustWrap() = false, want true")
	}

	appending := Function{{Layout: NewTree(CompositeItem(StackType, 0, false))}}
	if appending.MustWrap() {
		t.Error("MustWrap() = true, want false")
	}
}
