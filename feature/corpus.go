package feature

import (
	"context"
	"sort"

	"github.com/rushteam/feedkit/core"
)

// Provider 是可选的外部特征来源（如 Feast 在线特征库），
// 用于在缩放前给事件行补充额外的数值特征。
type Provider interface {
	// EventFeatures 按事件 ID 批量获取数值特征：eventID -> 特征名 -> 值
	EventFeatures(ctx context.Context, eventIDs []string) (map[string]map[string]float64, error)
}

// CorpusEncoder 把原始事件语料转换为共享的编码特征矩阵。
//
// 固定列模式 = {price} ∪ {category 观测值的独热列} ∪ {city 观测值的独热列}，
// 全部数值列（含价格与独热列）用同一个 Min-Max 缩放器在整个语料上
// 拟合一次后归一化到 [0,1]。缩放参数全局共享：每个用户的训练/候选
// 划分都复用同一份矩阵，不做逐用户重拟合。
//
// 缺失 category 或 city 的事件不为缺失字段贡献独热列（静默排除出独热
// 空间），该事件在这些列上取 0。
type CorpusEncoder struct {
	provider Provider
}

// CorpusEncoderOption 是 CorpusEncoder 的配置选项
type CorpusEncoderOption func(*CorpusEncoder)

// WithProvider 设置外部特征来源（如 feature.FeastProvider）
func WithProvider(p Provider) CorpusEncoderOption {
	return func(e *CorpusEncoder) {
		e.provider = p
	}
}

// NewCorpusEncoder 创建语料编码器
func NewCorpusEncoder(opts ...CorpusEncoderOption) *CorpusEncoder {
	e := &CorpusEncoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode 编码整个事件语料，返回带特征的 Item 列表（与输入同序）。
// 输出矩阵在一次运行内只读共享，调用方不得再修改 Features。
func (e *CorpusEncoder) Encode(ctx context.Context, events []*core.Event) ([]*core.Item, error) {
	if len(events) == 0 {
		return nil, nil
	}

	encoder := NewOneHotEncoder(map[string][]string{
		"category": CollectValues(events, func(ev *core.Event) string { return ev.Category }),
		"city":     CollectValues(events, func(ev *core.Event) string { return ev.City }),
	})

	items := make([]*core.Item, 0, len(events))
	for _, ev := range events {
		item := core.NewItem(ev.ID)
		item.Features["price"] = ParsePrice(ev.Price)
		if ev.Category != "" {
			for k, v := range encoder.EncodeWithKey("category", ev.Category) {
				item.Features[k] = v
			}
		}
		if ev.City != "" {
			for k, v := range encoder.EncodeWithKey("city", ev.City) {
				item.Features[k] = v
			}
		}
		item.Meta["category"] = ev.Category
		item.Meta["city"] = ev.City
		item.Meta["price"] = item.Features["price"]
		item.Meta["title"] = ev.Title
		items = append(items, item)
	}

	if e.provider != nil {
		if err := e.enrich(ctx, items); err != nil {
			return nil, err
		}
	}

	// 补齐缺失列，保证所有行共享同一列模式（缺失字段的事件取 0）
	schema := make(map[string]struct{})
	for _, item := range items {
		for k := range item.Features {
			schema[k] = struct{}{}
		}
	}
	for _, item := range items {
		for k := range schema {
			if _, ok := item.Features[k]; !ok {
				item.Features[k] = 0.0
			}
		}
	}

	rows := make([]map[string]float64, len(items))
	for i, item := range items {
		rows[i] = item.Features
	}
	scaler := FitMinMaxNormalizer(rows)
	for _, item := range items {
		item.Features = scaler.Normalize(item.Features)
	}

	return items, nil
}

// enrich 从外部特征来源补充事件特征（缩放前合并）。
func (e *CorpusEncoder) enrich(ctx context.Context, items []*core.Item) error {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	features, err := e.provider.EventFeatures(ctx, ids)
	if err != nil {
		return err
	}

	for _, item := range items {
		for k, v := range features[item.ID] {
			item.Features[k] = v
		}
	}
	return nil
}

// CollectValues 收集语料中某个类别字段的观测取值（去重、排序、跳过空值）。
// 排序保证取值空间与列模式在重复运行之间稳定。
func CollectValues(events []*core.Event, get func(*core.Event) string) []string {
	seen := make(map[string]struct{})
	for _, ev := range events {
		if v := get(ev); v != "" {
			seen[v] = struct{}{}
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
