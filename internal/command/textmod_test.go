package command

import "testing"

func TestMockText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello there", "hElLo ThErE"},
		{"ALREADY LOUD", "aLrEaDy LoUd"},
		{"with 123 numbers", "wItH 123 nUmBeRs"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := mockText(tc.in); got != tc.want {
			t.Errorf("mockText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInverseText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello There", "hELLO tHERE"},
		{"lowercase", "LOWERCASE"},
		{"12!@", "12!@"},
	}
	for _, tc := range cases {
		if got := inverseText(tc.in); got != tc.want {
			t.Errorf("inverseText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSpacingText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"abc", "a b c"},
		{"a", "a"},
		{"", ""},
		{"héllo", "h é l l o"},
	}
	for _, tc := range cases {
		if got := spacingText(tc.in); got != tc.want {
			t.Errorf("spacingText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
