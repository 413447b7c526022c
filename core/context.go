package core

import "github.com/rushteam/feedkit/pkg/utils"

// RecommendContext 承载单个用户的运行期信息，贯穿整个 Pipeline 透传。
// 每个用户一个实例，运行结束即废弃；Node 之间只通过它共享用户态。
type RecommendContext struct {
	UserID string

	// User 是用户文档快照（交互列表、feed），运行开始时读取一次。
	User *UserProfile

	// Weights 是该用户的交互权重 map（event ID -> 带符号整数），
	// 由 UserProfile.InteractionWeights 计算，训练后即丢弃。
	Weights map[string]int

	// Labels 是用户级标签，可驱动 Pipeline 行为（如 CEL 规则过滤）。
	Labels map[string]utils.Label

	// Params 请求级上下文参数（调试开关、运行标识等）。
	Params map[string]any
}

// NewRecommendContext 为一个用户构建运行上下文，并计算其交互权重。
func NewRecommendContext(user *UserProfile) *RecommendContext {
	return &RecommendContext{
		UserID:  user.ID,
		User:    user,
		Weights: user.InteractionWeights(),
		Labels:  make(map[string]utils.Label),
		Params:  make(map[string]any),
	}
}

// PutLabel 写入用户级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取用户级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
