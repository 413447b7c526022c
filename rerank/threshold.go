package rerank

import (
	"context"

	"github.com/rushteam/feedkit/core"
	"github.com/rushteam/feedkit/pipeline"
)

// DefaultShowThreshold 是"是否展示"的判定阈值：预测标签 > 1.5 才进 feed。
// 1.5 把"单次正向交互"（权重 1，仅 liked）与"叠加正向交互"（权重 >= 2，
// 例如 liked+bookmarked）分隔开——只推荐预测亲和度超过单次点赞的事件。
// 该常数是兼容性约定，可调但不要静默改动。
const DefaultShowThreshold = 1.5

// ThresholdNode 是一个阈值截断节点，把排序分数转为二元"展示"决策：
// 只保留 Score 大于阈值的候选。通常紧跟 rank.PreferenceNode 使用。
type ThresholdNode struct {
	// Threshold 判定阈值；0 值语义上无效，取 DefaultShowThreshold
	Threshold float64
}

func (n *ThresholdNode) Name() string        { return "rerank.threshold" }
func (n *ThresholdNode) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *ThresholdNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	threshold := n.Threshold
	if threshold == 0 {
		threshold = DefaultShowThreshold
	}

	out := make([]*core.Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if item.Score > threshold {
			out = append(out, item)
		}
	}
	return out, nil
}

var _ pipeline.Node = (*ThresholdNode)(nil)
