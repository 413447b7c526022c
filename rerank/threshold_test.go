package rerank

import (
	"context"
	"testing"

	"github.com/rushteam/feedkit/core"
)

func TestThresholdNode_Process(t *testing.T) {
	mk := func(id string, score float64) *core.Item {
		item := core.NewItem(id)
		item.Score = score
		return item
	}

	tests := []struct {
		name      string
		threshold float64
		items     []*core.Item
		want      []string
	}{
		{
			name:  "default keeps only above 1.5",
			items: []*core.Item{mk("e1", 1.0), mk("e2", 2.0), mk("e3", -1.0), mk("e4", 3.0)},
			want:  []string{"e2", "e4"},
		},
		{
			name:  "exactly at threshold is dropped",
			items: []*core.Item{mk("e1", 1.5)},
			want:  []string{},
		},
		{
			name:      "custom threshold",
			threshold: 0.5,
			items:     []*core.Item{mk("e1", 1.0), mk("e2", 0.5)},
			want:      []string{"e1"},
		},
		{
			name:  "nil item skipped",
			items: []*core.Item{nil, mk("e1", 2.0)},
			want:  []string{"e1"},
		},
		{
			name:  "empty input",
			items: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &ThresholdNode{Threshold: tt.threshold}
			out, err := node.Process(context.Background(), nil, tt.items)
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if len(out) != len(tt.want) {
				t.Fatalf("kept %d items, want %d", len(out), len(tt.want))
			}
			for i, item := range out {
				if item.ID != tt.want[i] {
					t.Errorf("out[%d] = %s, want %s", i, item.ID, tt.want[i])
				}
			}
		})
	}
}
