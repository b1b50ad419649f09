package bstmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestToDot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var buf bytes.Buffer
	if err := New[string, int]().ToDot(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n}\n" {
		t.Errorf("unexpected DOT for empty tree: %q", buf.String())
	}
	//
	m := New[string, int]()
	m.Put("b", 1)
	m.Put("a", 2)
	m.Put(`c"q`, 3)
	buf.Reset()
	if err := m.ToDot(&buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.Contains(dot, `[label="b"`) || !strings.Contains(dot, `[label="c\"q"`) {
		t.Errorf("expected node labels in DOT output")
	}
	if n := strings.Count(dot, "->"); n != 6 {
		t.Errorf("expected 6 edges (2 real, 4 to empty leaves), got %d", n)
	}
	if !strings.Contains(dot, `"1" -> "2"`) || !strings.Contains(dot, `"1" -> "3"`) {
		t.Errorf("expected root to link to both children")
	}
}
