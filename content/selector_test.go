package content

import (
	"strings"
	"testing"
)

func TestApplyCSSSelector(t *testing.T) {
	in := `<html><body><div class="main"><p>keep</p></div><footer>drop</footer></body></html>`

	out, err := ApplyCSSSelector(in, ".main")
	if err != nil {
		t.Fatalf("ApplyCSSSelector: %v", err)
	}
	if !strings.Contains(out, "keep") {
		t.Errorf("matched content missing: %q", out)
	}
	if strings.Contains(out, "drop") {
		t.Errorf("unmatched content survived: %q", out)
	}
}

func TestApplyCSSSelectorMultipleMatches(t *testing.T) {
	in := `<ul><li>uno</li><li>dos</li></ul>`

	out, err := ApplyCSSSelector(in, "li")
	if err != nil {
		t.Fatalf("ApplyCSSSelector: %v", err)
	}
	if !strings.Contains(out, "uno") || !strings.Contains(out, "dos") {
		t.Errorf("all matches should be concatenated: %q", out)
	}
}

func TestApplyCSSSelectorNoMatchReturnsOriginal(t *testing.T) {
	in := `<p>contenido</p>`

	out, err := ApplyCSSSelector(in, ".missing")
	if err != nil {
		t.Fatalf("ApplyCSSSelector: %v", err)
	}
	if out != in {
		t.Errorf("no match should return the input unchanged, got %q", out)
	}
}

func TestApplyCSSSelectorBadSelector(t *testing.T) {
	if _, err := ApplyCSSSelector("<p>x</p>", "div["); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"ab", 1},
		{"abcdef", 2},
		{strings.Repeat("palabra ", 30), 80},
	}
	for _, tt := range tests {
		if got := EstimateTokens(tt.in); got != tt.want {
			t.Errorf("EstimateTokens(%d chars) = %d, want %d", len(tt.in), got, tt.want)
		}
	}
}
