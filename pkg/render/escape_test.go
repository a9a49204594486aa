package render

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		in       string
		wantHTML string
		wantAttr string
	}{
		{"plain", "plain", "plain"},
		{`a<b>&"c"`, "a&lt;b&gt;&amp;&quot;c&quot;", "a&lt;b&gt;&amp;&quot;c&quot;"},
		{"it's", "it&#39;s", "it&#39;s"},
		{"a\nb\tc", "a\nb\tc", "a&#10;b&#9;c"},
	}

	for _, tt := range tests {
		if got := escapeHTML(tt.in); got != tt.wantHTML {
			t.Errorf("escapeHTML(%q) = %q, want %q", tt.in, got, tt.wantHTML)
		}
		if got := escapeAttr(tt.in); got != tt.wantAttr {
			t.Errorf("escapeAttr(%q) = %q, want %q", tt.in, got, tt.wantAttr)
		}
	}
}
