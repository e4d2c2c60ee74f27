package money

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{27.5, "27.50"},
		{10, "10.00"},
		{0, "0.00"},
		{35.005, "35.01"},
		{19.999999, "20.00"},
	}

	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	if got := FormatBRL(35.0); got != "R$ 35.00" {
		t.Errorf("expected 'R$ 35.00', got %q", got)
	}
}
