package util

import (
	"testing"
	"time"
)

func TestFormatTrackLength(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "0:00"},
		{-5, "0:00"},
		{1000, "0:01"},
		{215000, "3:35"},
		{600000, "10:00"},
		{3600000, "1:00:00"},
		{3723000, "1:02:03"},
	}
	for _, tc := range cases {
		if got := FormatTrackLength(tc.ms); got != tc.want {
			t.Errorf("FormatTrackLength(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"90", 90 * time.Second, false},
		{"1:30", 90 * time.Second, false},
		{"01:02:03", time.Hour + 2*time.Minute + 3*time.Second, false},
		{" 2:00 ", 2 * time.Minute, false},
		{"1:75", 0, true},
		{"0:75", 0, true},
		{"1:2:3:4", 0, true},
		{"abc", 0, true},
		{"-5", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimestamp(%q) succeeded with %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimestamp(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
