package focus

import "testing"

func TestIs(t *testing.T) {
	const ql = "com.apple.quicklook.qlmanage"

	tests := []struct {
		name  string
		query Query
		id    string
		want  bool
	}{
		{"match", Static(ql), ql, true},
		{"other app", Static("com.apple.Terminal"), ql, false},
		{"unknown", Static(Unknown), ql, false},
		{"unknown vs empty id", Static(Unknown), "", false},
		{"nil query", nil, ql, false},
		{"nil func", Func(nil), ql, false},
		{"func", Func(func() string { return ql }), ql, true},
		{"prefix only", Static(ql + ".helper"), ql, false},
	}

	for _, tt := range tests {
		if got := Is(tt.query, tt.id); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
