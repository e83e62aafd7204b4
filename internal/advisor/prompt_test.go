package advisor

import (
	"strings"
	"testing"
)

func TestBuildSystemPrompt(t *testing.T) {
	got := BuildSystemPrompt()

	if !strings.HasPrefix(got, advisorBrief) {
		t.Error("system prompt should open with the advisor brief")
	}
	if !strings.Contains(got, "--- DASHBOARD DATA (as of ") {
		t.Errorf("system prompt missing data header:\n%s", got)
	}
}
