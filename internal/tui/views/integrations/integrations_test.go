package integrations

import (
	"strings"
	"testing"
)

func TestRenderShowsNonePlaceholderWithoutEditor(t *testing.T) {
	out := Render(Props{Editors: []string{"Vim"}})
	if !strings.Contains(out, "None") {
		t.Fatalf("expected None placeholder for unselected editor:\n%s", out)
	}
}

func TestRenderHintsWhenNothingDiscovered(t *testing.T) {
	out := Render(Props{})
	if !strings.Contains(out, "nothing discovered") {
		t.Fatalf("expected discovery hint for empty option lists:\n%s", out)
	}
}
