package rank

import (
	"context"
	"testing"

	"github.com/rushteam/feedkit/core"
)

func corpusItems() []*core.Item {
	mk := func(id string, f float64) *core.Item {
		item := core.NewItem(id)
		item.Features = map[string]float64{"f": f}
		return item
	}
	return []*core.Item{mk("e1", 0.0), mk("e2", 1.0), mk("e3", 1.0)}
}

func TestPreferenceNode_Process(t *testing.T) {
	rctx := core.NewRecommendContext(&core.UserProfile{
		ID:         "u1",
		Liked:      []string{"e1", "e2"},
		Bookmarked: []string{"e2"},
	})

	node := &PreferenceNode{}
	out, err := node.Process(context.Background(), rctx, corpusItems())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	// 候选集只含未被引用的 e3
	if len(out) != 1 || out[0].ID != "e3" {
		t.Fatalf("candidates = %v, want only e3", ids(out))
	}

	// e3 与训练样本 e2（标签 2）特征一致，预测应为 2
	if out[0].Score != 2.0 {
		t.Errorf("e3 score = %v, want 2", out[0].Score)
	}
	if lbl, ok := out[0].Labels["predicted_label"]; !ok || lbl.Value != "2" {
		t.Errorf("predicted_label = %v, want 2", lbl.Value)
	}
}

func TestPreferenceNode_SharedCorpusUnmodified(t *testing.T) {
	items := corpusItems()
	rctx := core.NewRecommendContext(&core.UserProfile{
		ID:         "u1",
		Liked:      []string{"e1", "e2"},
		Bookmarked: []string{"e2"},
	})

	if _, err := (&PreferenceNode{}).Process(context.Background(), rctx, items); err != nil {
		t.Fatalf("Process: %v", err)
	}

	for _, item := range items {
		if item.Score != 0 {
			t.Errorf("shared item %s score mutated to %v", item.ID, item.Score)
		}
		if len(item.Labels) != 0 {
			t.Errorf("shared item %s labels mutated: %v", item.ID, item.Labels)
		}
	}
}

func TestPreferenceNode_CancelledWeightExcludedEverywhere(t *testing.T) {
	// e2 的 like 被 dislike 抵消：既不训练也不进候选
	rctx := core.NewRecommendContext(&core.UserProfile{
		ID:       "u1",
		Liked:    []string{"e1", "e2"},
		Disliked: []string{"e2", "e3"},
	})

	out, err := (&PreferenceNode{}).Process(context.Background(), rctx, corpusItems())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	for _, item := range out {
		if item.ID == "e2" {
			t.Error("cancelled-weight event must not reach the candidate set")
		}
	}
}

func TestPreferenceNode_NoTrainingData(t *testing.T) {
	tests := []struct {
		name string
		user *core.UserProfile
	}{
		{
			name: "no interactions at all",
			user: &core.UserProfile{ID: "u1"},
		},
		{
			name: "single class only",
			user: &core.UserProfile{ID: "u1", Liked: []string{"e1", "e2"}},
		},
		{
			name: "all weights cancelled",
			user: &core.UserProfile{ID: "u1", Liked: []string{"e1"}, Disliked: []string{"e1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rctx := core.NewRecommendContext(tt.user)
			_, err := (&PreferenceNode{}).Process(context.Background(), rctx, corpusItems())
			if !core.IsNoTrainingData(err) {
				t.Errorf("Process() error = %v, want no-training-data", err)
			}
		})
	}
}

func ids(items []*core.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
