package textutil

import "testing"

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "report.pdf", "report.pdf"},
		{"unicode kept", "zażółć.txt", "zażółć.txt"},
		{"newline", "a\nb.txt", "a b.txt"},
		{"escape", "a\x1b[31mb", "a?[31mb"},
		{"bidi override", "evil\u202efdp.exe", "evil<U+202E>fdp.exe"},
		{"zero width joiner", "a\u200db", "a<U+200D>b"},
		{"del", "a\x7fb", "a?b"},
	}

	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Fatalf("%s: SanitizeName(%q)=%q want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestFitWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdefgh", 5, "abcd…"},
		{"wide runes", "日本語ファイル", 7, "日本語…"},
		{"no width", "abcdefgh", 0, "abcdefgh"},
		{"tiny width", "abcdefgh", 1, "a"},
	}

	for _, tt := range tests {
		got := FitWidth(tt.text, tt.width)
		if got != tt.want {
			t.Fatalf("%s: FitWidth(%q, %d)=%q want %q", tt.name, tt.text, tt.width, got, tt.want)
		}
		if tt.width > 0 && DisplayWidth(got) > tt.width {
			t.Fatalf("%s: result %q wider than %d", tt.name, got, tt.width)
		}
	}
}
