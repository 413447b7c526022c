// Package feedkit 是社交活动发现应用的个性化首页 feed 批处理推荐器。
//
// 设计要点：
// - Pipeline-first: 逐用户的推荐逻辑通过 Node 串联（Rank → ReRank → Filter）
// - 快照语义: 事件/用户每次运行各读一次，核心绝不修改输入快照，只通过 feed 写接口输出
// - 逐用户独立: 每个用户一个一次性模型实例，失败互不影响
package feedkit

import "github.com/rushteam/feedkit/pipeline"

// 轻量 facade：便于用户直接 import "feedkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRank        = pipeline.KindRank
	KindFilter      = pipeline.KindFilter
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
