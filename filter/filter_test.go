package filter

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/feedkit/core"
)

func TestDislikedFilter_ShouldFilter(t *testing.T) {
	rctx := core.NewRecommendContext(&core.UserProfile{
		ID:       "u1",
		Disliked: []string{"e1", "e3"},
	})

	tests := []struct {
		name string
		item *core.Item
		want bool
	}{
		{name: "disliked event", item: core.NewItem("e1"), want: true},
		{name: "clean event", item: core.NewItem("e2"), want: false},
		{name: "nil item", item: nil, want: true},
	}

	f := &DislikedFilter{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.ShouldFilter(context.Background(), rctx, tt.item)
			if err != nil {
				t.Fatalf("ShouldFilter: %v", err)
			}
			if got != tt.want {
				t.Errorf("ShouldFilter(%v) = %v, want %v", tt.item, got, tt.want)
			}
		})
	}
}

type stubDislikedStore struct {
	ids []string
	err error
}

func (s *stubDislikedStore) GetDisliked(context.Context, string) ([]string, error) {
	return s.ids, s.err
}

func TestDislikedFilter_StoreSupplement(t *testing.T) {
	// 快照里没有 e9，但存储的最新读取里有：第二道防线应拦下
	rctx := core.NewRecommendContext(&core.UserProfile{ID: "u1"})

	f := &DislikedFilter{Store: &stubDislikedStore{ids: []string{"e9"}}}
	got, err := f.ShouldFilter(context.Background(), rctx, core.NewItem("e9"))
	if err != nil {
		t.Fatalf("ShouldFilter: %v", err)
	}
	if !got {
		t.Error("store-supplied dislike should be filtered")
	}

	// 存储失败时退回快照判断，不拦截
	f = &DislikedFilter{Store: &stubDislikedStore{err: errors.New("down")}}
	got, err = f.ShouldFilter(context.Background(), rctx, core.NewItem("e9"))
	if err != nil {
		t.Fatalf("ShouldFilter: %v", err)
	}
	if got {
		t.Error("store failure must not filter on its own")
	}
}

func TestFilterNode_Process(t *testing.T) {
	rctx := core.NewRecommendContext(&core.UserProfile{
		ID:       "u1",
		Disliked: []string{"e2"},
	})

	items := []*core.Item{core.NewItem("e1"), core.NewItem("e2"), core.NewItem("e3")}
	node := &FilterNode{Filters: []Filter{&DislikedFilter{}}}

	out, err := node.Process(context.Background(), rctx, items)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(out) != 2 || out[0].ID != "e1" || out[1].ID != "e3" {
		t.Fatalf("unexpected survivors: %v", out)
	}

	// 被过滤的条目带上 filtered 标签，来源为过滤器名
	lbl, ok := items[1].Labels["filtered"]
	if !ok || lbl.Value != "true" || lbl.Source != "filter.disliked" {
		t.Errorf("filtered label = %+v, want true/filter.disliked", lbl)
	}
}
