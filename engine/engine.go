package engine

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rushteam/feedkit/core"
	"github.com/rushteam/feedkit/feature"
	"github.com/rushteam/feedkit/feed"
	"github.com/rushteam/feedkit/filter"
	"github.com/rushteam/feedkit/pipeline"
	"github.com/rushteam/feedkit/rank"
	"github.com/rushteam/feedkit/rerank"
)

// Engine 是批处理编排器：
//  1. 取事件/用户各一次全量快照
//  2. 编码语料一次（缩放参数全局拟合，所有用户共享同一只读矩阵）
//  3. 逐用户独立跑 Pipeline（训练 -> 阈值 -> 过滤）并落 feed
//
// 单个用户的任何失败只影响该用户的结果，批次继续。
// 计算幂等：同一份快照重跑两次得到逐位一致的 feed，失败不重试，
// 重跑整个批次即是重试。
type Engine struct {
	events core.EventStore
	users  core.UserStore

	encoder  *feature.CorpusEncoder
	pipeline *pipeline.Pipeline
	writer   *feed.Materializer
	logger   *zap.Logger
	workers  int

	threshold    float64
	excludeRules []string
}

// Option 是 Engine 的配置选项
type Option func(*Engine)

// WithLogger 设置日志器（默认 zap.NewNop）
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithWorkers 设置逐用户处理的并发数（默认 1，串行）。
// 并发安全前提：编码矩阵只读共享，每个用户只写自己的 feed。
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithEncoder 替换语料编码器（如挂接 Feast 特征来源）
func WithEncoder(encoder *feature.CorpusEncoder) Option {
	return func(e *Engine) {
		e.encoder = encoder
	}
}

// WithPipeline 替换整条用户 Pipeline（高级用法，配合 NodeFactory）
func WithPipeline(p *pipeline.Pipeline) Option {
	return func(e *Engine) {
		e.pipeline = p
	}
}

// WithThreshold 设置展示阈值（默认 rerank.DefaultShowThreshold）。
// 仅对默认 Pipeline 生效；自定义 Pipeline 自带阈值节点。
func WithThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

// WithExcludeRules 设置 CEL 排除规则（仅对默认 Pipeline 生效）
func WithExcludeRules(rules []string) Option {
	return func(e *Engine) {
		e.excludeRules = rules
	}
}

// NewEngine 创建批处理引擎。
func NewEngine(events core.EventStore, users core.UserStore, opts ...Option) *Engine {
	e := &Engine{
		events:  events,
		users:   users,
		encoder: feature.NewCorpusEncoder(),
		writer:  feed.NewMaterializer(users),
		logger:  zap.NewNop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.pipeline == nil {
		e.pipeline = defaultPipeline(e.threshold, e.excludeRules)
	}
	return e
}

// defaultPipeline 组装标准的逐用户链：训练打分 -> 阈值截断 -> 过滤。
func defaultPipeline(threshold float64, excludeRules []string) *pipeline.Pipeline {
	filters := []filter.Filter{&filter.DislikedFilter{}}
	if len(excludeRules) > 0 {
		filters = append(filters, &filter.RuleFilter{Exprs: excludeRules})
	}
	return &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&rank.PreferenceNode{},
			&rerank.ThresholdNode{Threshold: threshold},
			&filter.FilterNode{Filters: filters},
		},
	}
}

// Run 执行一次完整批处理，返回每个用户的处理结果。
// 返回 error 仅表示批次级失败（快照读取/语料编码失败）；
// 用户级失败都折进返回的 outcome map。
func (e *Engine) Run(ctx context.Context) (map[string]core.Outcome, error) {
	events, err := e.events.ReadAllEvents(ctx)
	if err != nil {
		return nil, err
	}
	e.logger.Info("events snapshot loaded",
		zap.Int("count", len(events)),
		zap.String("store", e.events.Name()),
	)

	items, err := e.encoder.Encode(ctx, events)
	if err != nil {
		return nil, err
	}

	users, err := e.users.ReadAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	e.logger.Info("users snapshot loaded", zap.Int("count", len(users)))

	var (
		mu       sync.Mutex
		outcomes = make(map[string]core.Outcome, len(users))
	)

	eg, egCtx := errgroup.WithContext(ctx)
	workers := e.workers
	if workers < 1 {
		workers = 1
	}
	eg.SetLimit(workers)

	for _, user := range users {
		u := user
		eg.Go(func() error {
			outcome := e.processUser(egCtx, u, items)
			mu.Lock()
			outcomes[u.ID] = outcome
			mu.Unlock()
			// 用户级失败不中断批次
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return outcomes, err
	}

	e.logSummary(outcomes)
	return outcomes, nil
}

// processUser 跑完一个用户的全链路并把各类失败折算为 Outcome。
func (e *Engine) processUser(ctx context.Context, user *core.UserProfile, items []*core.Item) core.Outcome {
	if !user.HasInteractions() {
		// 零交互用户没有训练样本：整体跳过，本次不动其 feed
		e.logger.Debug("user skipped, no interactions", zap.String("user", user.ID))
		return core.OutcomeSkippedNoData
	}

	rctx := core.NewRecommendContext(user)

	recommended, err := e.pipeline.Run(ctx, rctx, items)
	if err != nil {
		if core.IsNoTrainingData(err) {
			e.logger.Info("user skipped, no training data", zap.String("user", user.ID))
			return core.OutcomeSkippedNoData
		}
		e.logger.Error("user pipeline failed",
			zap.String("user", user.ID),
			zap.Error(err),
		)
		return core.OutcomeFailed
	}

	ids, err := e.writer.Materialize(ctx, rctx, recommended)
	if err != nil {
		if core.IsNotFound(err) {
			e.logger.Warn("user vanished before feed write", zap.String("user", user.ID))
			return core.OutcomeNotFound
		}
		e.logger.Error("feed write failed",
			zap.String("user", user.ID),
			zap.Error(err),
		)
		return core.OutcomeFailed
	}

	e.logger.Info("user feed updated",
		zap.String("user", user.ID),
		zap.Int("feed_size", len(ids)),
	)
	return core.OutcomeTrained
}

func (e *Engine) logSummary(outcomes map[string]core.Outcome) {
	counts := make(map[core.Outcome]int)
	for _, o := range outcomes {
		counts[o]++
	}
	e.logger.Info("batch finished",
		zap.Int("users", len(outcomes)),
		zap.Int("trained", counts[core.OutcomeTrained]),
		zap.Int("skipped_no_data", counts[core.OutcomeSkippedNoData]),
		zap.Int("not_found", counts[core.OutcomeNotFound]),
		zap.Int("failed", counts[core.OutcomeFailed]),
	)
}
