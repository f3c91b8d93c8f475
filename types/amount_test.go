package types

import (
	"encoding/json"
	"testing"
)

func TestAmountConstructors(t *testing.T) {
	tests := []struct {
		name    string
		amount  Amount
		display string
	}{
		{"Zero", ZeroAmount(), "0"},
		{"Small", NewAmount(42), "42"},
		{"MaxUint64", NewAmount(18446744073709551615), "18446744073709551615"},
		{"Parsed", MustAmount("340282366920938463463374607431768211456"), "340282366920938463463374607431768211456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.amount.String() != tt.display {
				t.Errorf("String: got %s, want %s", tt.amount.String(), tt.display)
			}
		})
	}
}

func TestParseAmountInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Negative", "-1"},
		{"Hex", "0x10"},
		{"Garbage", "abc"},
		{"TooLarge", "115792089237316195423570985008687907853269984665640564039457584007913129639936"}, // 2^256
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAmount(tt.input); err == nil {
				t.Errorf("ParseAmount(%q): expected error", tt.input)
			}
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func() (Amount, error)
		expected string
	}{
		{"Add", func() (Amount, error) { return NewAmount(100).Add(NewAmount(200)) }, "300"},
		{"Sub", func() (Amount, error) { return NewAmount(500).Sub(NewAmount(200)) }, "300"},
		{"AddZero", func() (Amount, error) { return NewAmount(100).Add(ZeroAmount()) }, "100"},
		{"SubToZero", func() (Amount, error) { return NewAmount(100).Sub(NewAmount(100)) }, "0"},
		{"MulDivExact", func() (Amount, error) { return NewAmount(100).MulDiv(500, 1000) }, "50"},
		{"MulDivFloor", func() (Amount, error) { return NewAmount(100).MulDiv(1, 3) }, "33"},
		{"MulDivLarge", func() (Amount, error) {
			// Intermediate product exceeds 256 bits but the quotient fits.
			return MustAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935").MulDiv(2, 4)
		}, "57896044618658097711785492504343953926634992332820282019728792003956564819967"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.expected {
				t.Errorf("got %s, want %s", got.String(), tt.expected)
			}
		})
	}
}

func TestAmountArithmeticErrors(t *testing.T) {
	max := MustAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935")

	tests := []struct {
		name string
		op   func() (Amount, error)
		want error
	}{
		{"AddOverflow", func() (Amount, error) { return max.Add(NewAmount(1)) }, ErrAmountOverflow},
		{"SubUnderflow", func() (Amount, error) { return NewAmount(1).Sub(NewAmount(2)) }, ErrAmountUnderflow},
		{"DivByZero", func() (Amount, error) { return NewAmount(10).MulDiv(1, 0) }, ErrDivisionByZero},
		{"MulDivOverflow", func() (Amount, error) { return max.MulDiv(2, 1) }, ErrAmountOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op()
			if err == nil {
				t.Fatal("expected error")
			}
			if err != tt.want {
				t.Errorf("got %v, want %v", err, tt.want)
			}
			if !IsArithmeticError(err) {
				t.Errorf("IsArithmeticError(%v) = false", err)
			}
		})
	}
}

func TestAmountComparison(t *testing.T) {
	tests := []struct {
		name string
		a, b Amount
		cmp  int
	}{
		{"Equal", NewAmount(100), NewAmount(100), 0},
		{"Less", NewAmount(50), NewAmount(100), -1},
		{"Greater", NewAmount(100), NewAmount(50), 1},
		{"ZeroVsZero", ZeroAmount(), NewAmount(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cmp(tt.b); got != tt.cmp {
				t.Errorf("Cmp: got %d, want %d", got, tt.cmp)
			}
			if tt.cmp == 0 && !tt.a.Equal(tt.b) {
				t.Error("Equal: got false, want true")
			}
		})
	}
}

func TestAmountMin(t *testing.T) {
	a, b := NewAmount(3), NewAmount(7)
	if got := a.Min(b); !got.Equal(a) {
		t.Errorf("Min: got %s, want %s", got.String(), a.String())
	}
	if got := b.Min(a); !got.Equal(a) {
		t.Errorf("Min: got %s, want %s", got.String(), a.String())
	}
}

func TestSum(t *testing.T) {
	got, err := Sum([]Amount{NewAmount(1), NewAmount(2), NewAmount(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "6" {
		t.Errorf("got %s, want 6", got.String())
	}

	empty, err := Sum(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !empty.IsZero() {
		t.Errorf("Sum(nil) = %s, want 0", empty.String())
	}

	max := MustAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	if _, err := Sum([]Amount{max, NewAmount(1)}); err != ErrAmountOverflow {
		t.Errorf("overflow: got %v, want %v", err, ErrAmountOverflow)
	}
}

func TestAmountJSON(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"String", `"123"`, "123"},
		{"BareNumber", `456`, "456"},
		{"Huge", `"340282366920938463463374607431768211456"`, "340282366920938463463374607431768211456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tt.input), &a); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if a.String() != tt.expect {
				t.Errorf("got %s, want %s", a.String(), tt.expect)
			}

			out, err := json.Marshal(a)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(out) != `"`+tt.expect+`"` {
				t.Errorf("marshal: got %s", out)
			}
		})
	}

	var a Amount
	if err := json.Unmarshal([]byte(`"-5"`), &a); err == nil {
		t.Error("expected error for negative input")
	}
}
