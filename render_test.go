package mosaic

import (
	"strings"
	"testing"
)

func TestDescribeTree(t *testing.T) {
	root := sample()
	got := DescribeTree(root)
	want := "H[a:1 V[b:1 c:3]:2]:1"
	if got != want {
		t.Errorf("DescribeTree = %q, want %q", got, want)
	}
}

func TestRender(t *testing.T) {
	r := NewRenderer()
	root := NewBranch("root", AxisHorizontal, NewLeaf("left", nil), NewLeaf("right", nil))
	snap := Snapshot{Root: root, EditMode: true}

	out := r.Render(snap, 60, 10)
	if !strings.Contains(out, "left") || !strings.Contains(out, "right") {
		t.Errorf("rendered output should contain both pane ids:\n%s", out)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Errorf("expected 10 lines, got %d", len(lines))
	}

	t.Run("PreviewMarker", func(t *testing.T) {
		pv := Preview{TargetID: "right", TargetPath: Path{1}, Zone: ZoneBottom}
		snap := Snapshot{Root: root, Preview: &pv, EditMode: true}
		out := r.Render(snap, 60, 10)
		if !strings.Contains(out, "split ▼") {
			t.Errorf("expected bottom zone marker in output:\n%s", out)
		}
	})

	t.Run("CustomContent", func(t *testing.T) {
		r := NewRenderer().Content(func(l *Leaf, w, h int) string {
			return "<" + l.ID + ">"
		})
		out := r.Render(snap, 60, 10)
		if !strings.Contains(out, "<left>") {
			t.Errorf("custom content renderer not applied:\n%s", out)
		}
	})

	t.Run("Degenerate", func(t *testing.T) {
		if out := r.Render(Snapshot{}, 60, 10); out != "" {
			t.Error("nil root should render nothing")
		}
		if out := r.Render(snap, 1, 1); out != "" {
			t.Error("sub-minimal size should render nothing")
		}
	})
}
