// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package textkey

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		mode Mode
		want []string
	}{
		{"empty runes", "", Runes, []string{}},
		{"empty graphemes", "", Graphemes, []string{}},
		{"ascii runes", "abc", Runes, []string{"a", "b", "c"}},
		{"ascii graphemes", "abc", Graphemes, []string{"a", "b", "c"}},
		{"umlaut runes", "K\u00f6ln", Runes, []string{"K", "\u00f6", "l", "n"}},
		{"combining runes", "e\u0301x", Runes, []string{"e", "\u0301", "x"}},
		{"combining graphemes", "e\u0301x", Graphemes, []string{"e\u0301", "x"}},
		{"crlf graphemes", "a\r\nb", Graphemes, []string{"a", "\r\n", "b"}},
		{"invalid utf8 runes", "a\xffb", Runes, []string{"a", "\xff", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Split(tt.in, tt.mode)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q, %s) mismatch (-want +got):\n%s", tt.in, tt.mode, diff)
			}

			if joined := Join(got); joined != tt.in {
				t.Errorf("Join(Split(%q)) = %q", tt.in, joined)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "runes", want: Runes},
		{in: "Rune", want: Runes},
		{in: " graphemes ", want: Graphemes},
		{in: "GRAPHEME", want: Graphemes},
		{in: "bytes", wantErr: true},
		{in: "", wantErr: true},
	} {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q), expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q), unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestModeText(t *testing.T) {
	t.Parallel()

	for _, m := range []Mode{Runes, Graphemes} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}

		var got Mode
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != m {
			t.Errorf("text round trip of %s returned %s", m, got)
		}
	}

	var m Mode
	if err := m.UnmarshalText([]byte("words")); err == nil {
		t.Error("UnmarshalText(words), expected error")
	}

	if got := Mode(7).String(); got != "Mode(7)" {
		t.Errorf("Mode(7).String() = %q", got)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	decomposed := "Ko\u0308ln"
	precomposed := "K\u00f6ln"

	if decomposed == precomposed {
		t.Fatal("test strings must differ before normalization")
	}

	if got := Normalize(decomposed); got != precomposed {
		t.Errorf("Normalize(%q) = %q, want %q", decomposed, got, precomposed)
	}

	if got := Normalize(precomposed); got != precomposed {
		t.Errorf("Normalize must not change NFC input, got %q", got)
	}
}
