package price

import (
	"errors"
	"testing"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
	}{
		{"12.50", 1250},
		{"4821", 482100},
		{"0.00", 0},
		{"5.1", 510},
		{"1.239", 124},
		{"1.231", 123},
		{".75", 75},
	}
	for _, c := range cases {
		got, err := ParseDecimal(c.in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q: expected %d got %d", c.in, c.want, got)
		}
	}
	for _, bad := range []string{"", "1.2.3", "abc", "1.x2"} {
		if _, err := ParseDecimal(bad); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
}

func TestAmountString(t *testing.T) {
	if s := Amount(1250).String(); s != "12.50" {
		t.Fatalf("expected 12.50 got %s", s)
	}
	if s := Amount(5).String(); s != "0.05" {
		t.Fatalf("expected 0.05 got %s", s)
	}
}

func TestParseManual(t *testing.T) {
	got, err := ParseManual(" 7.25 ")
	if err != nil || got != 725 {
		t.Fatalf("expected 7.25 got %v err=%v", got, err)
	}
	for _, bad := range []string{"", "0", "0.00", "-3", "3.141", "abc", "$5.00"} {
		if _, err := ParseManual(bad); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q: expected ErrInvalidInput got %v", bad, err)
		}
	}
}
