package feature

import (
	"context"
	"strings"

	"github.com/rushteam/feedkit/feast"
)

// FeastProvider 把 Feast 在线特征库接成 CorpusEncoder 的外部特征来源。
// 以事件 ID 为实体键批量取数值特征，合并进事件行后参与统一缩放。
//
// 特征引用形如 "event_stats:exposure"，落列时 ':' 替换为 '_'
// （列名需要能出现在 CEL 表达式与缩放参数 map 中）。
type FeastProvider struct {
	Client feast.Client

	// EntityKey 实体键名，默认 "event_id"
	EntityKey string

	// Features 要拉取的特征引用列表
	Features []string
}

// EventFeatures 实现 feature.Provider 接口。
func (p *FeastProvider) EventFeatures(ctx context.Context, eventIDs []string) (map[string]map[string]float64, error) {
	if p.Client == nil || len(p.Features) == 0 || len(eventIDs) == 0 {
		return nil, nil
	}

	entityKey := p.EntityKey
	if entityKey == "" {
		entityKey = "event_id"
	}

	entityRows := make([]map[string]interface{}, len(eventIDs))
	for i, id := range eventIDs {
		entityRows[i] = map[string]interface{}{entityKey: id}
	}

	resp, err := p.Client.GetOnlineFeatures(ctx, &feast.GetOnlineFeaturesRequest{
		Features:   p.Features,
		EntityRows: entityRows,
	})
	if err != nil {
		return nil, err
	}

	result := make(map[string]map[string]float64, len(eventIDs))
	for i, vector := range resp.FeatureVectors {
		row := make(map[string]float64)
		for name, raw := range vector.Values {
			if f, ok := raw.(float64); ok {
				row[strings.ReplaceAll(name, ":", "_")] = f
			}
		}
		result[eventIDs[i]] = row
	}
	return result, nil
}

var _ Provider = (*FeastProvider)(nil)
