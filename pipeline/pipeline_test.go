package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/feedkit/core"
)

type stubNode struct {
	name string
	kind Kind
	fn   func(items []*core.Item) ([]*core.Item, error)
}

func (n *stubNode) Name() string { return n.name }
func (n *stubNode) Kind() Kind   { return n.kind }
func (n *stubNode) Process(_ context.Context, _ *core.RecommendContext, items []*core.Item) ([]*core.Item, error) {
	return n.fn(items)
}

func TestPipeline_Run(t *testing.T) {
	items := []*core.Item{core.NewItem("e1"), core.NewItem("e2"), core.NewItem("e3")}

	dropFirst := &stubNode{name: "drop", kind: KindFilter, fn: func(in []*core.Item) ([]*core.Item, error) {
		return in[1:], nil
	}}
	keepOne := &stubNode{name: "keep", kind: KindReRank, fn: func(in []*core.Item) ([]*core.Item, error) {
		return in[:1], nil
	}}

	out, err := (&Pipeline{Nodes: []Node{dropFirst, keepOne}}).Run(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out) != 1 || out[0].ID != "e2" {
		t.Errorf("nodes must run in order, got %v", out)
	}
}

func TestPipeline_Run_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	failing := &stubNode{name: "fail", kind: KindRank, fn: func([]*core.Item) ([]*core.Item, error) {
		return nil, boom
	}}
	reached := false
	after := &stubNode{name: "after", kind: KindFilter, fn: func(in []*core.Item) ([]*core.Item, error) {
		reached = true
		return in, nil
	}}

	_, err := (&Pipeline{Nodes: []Node{failing, after}}).Run(context.Background(), nil, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("Run error = %v, want boom", err)
	}
	if reached {
		t.Error("nodes after a failure must not run")
	}
}

func TestPipeline_Run_Empty(t *testing.T) {
	items := []*core.Item{core.NewItem("e1")}
	out, err := (&Pipeline{}).Run(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("empty pipeline should pass items through, got %v", out)
	}
}
