package rank

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rushteam/feedkit/core"
	"github.com/rushteam/feedkit/model"
	"github.com/rushteam/feedkit/pipeline"
	"github.com/rushteam/feedkit/pkg/utils"
)

// PreferenceNode 是逐用户的偏好排序节点（Kind Rank）。
//
// 输入是整条语料的编码 Item 列表（所有用户共享、只读），
// 按当前用户的交互权重 map（rctx.Weights）切分：
//   - 训练集：权重非零的事件，标签 = 带符号整数权重本身
//   - 候选集：完全没有被引用过的事件（权重抵消为 0 的也算"已接触"，
//     既不训练也不进候选）
//
// 每个用户新建一个一次性的分类器实例拟合训练集，再对候选集逐个预测，
// 预测标签写入 item.Score（float64）与 "predicted_label" 标签。
// 返回值只含候选集；上游语料 Item 的 Score/Labels 不被修改。
//
// 训练集不足两个类别时返回 core.ErrNoTrainingData，
// 由引擎记为该用户 skipped，不影响批次内其他用户。
type PreferenceNode struct {
	// NewClassifier 构造每用户的分类器实例；nil 时默认 LogisticRegression
	NewClassifier func() model.Classifier
}

func (n *PreferenceNode) Name() string        { return "rank.preference" }
func (n *PreferenceNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *PreferenceNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if rctx == nil || len(rctx.Weights) == 0 {
		return nil, core.ErrNoTrainingData
	}

	var (
		trainRows   []map[string]float64
		trainLabels []int
		candidates  []*core.Item
	)

	for _, item := range items {
		weight, interacted := rctx.Weights[item.ID]
		switch {
		case !interacted:
			candidates = append(candidates, item)
		case weight != 0:
			trainRows = append(trainRows, item.Features)
			trainLabels = append(trainLabels, weight)
		}
	}

	clf := n.newClassifier()
	if err := clf.Fit(trainRows, trainLabels); err != nil {
		if core.IsNoTrainingData(err) {
			return nil, err
		}
		return nil, fmt.Errorf("fit %s for user %s: %w", clf.Name(), rctx.UserID, err)
	}

	scored := make([]*core.Item, 0, len(candidates))
	for _, item := range candidates {
		predicted := clf.Predict(item.Features)

		out := core.NewItem(item.ID)
		out.Features = item.Features
		out.Meta = item.Meta
		out.Score = float64(predicted)
		out.PutLabel("predicted_label", utils.Label{
			Value:  strconv.Itoa(predicted),
			Source: "rank",
		})
		out.PutLabel("rank_model", utils.Label{
			Value:  clf.Name(),
			Source: "rank",
		})
		scored = append(scored, out)
	}

	return scored, nil
}

func (n *PreferenceNode) newClassifier() model.Classifier {
	if n.NewClassifier != nil {
		return n.NewClassifier()
	}
	return &model.LogisticRegression{}
}

var _ pipeline.Node = (*PreferenceNode)(nil)
