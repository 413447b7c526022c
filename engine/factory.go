package engine

import (
	"fmt"

	"github.com/rushteam/feedkit/filter"
	"github.com/rushteam/feedkit/pipeline"
	"github.com/rushteam/feedkit/rank"
	"github.com/rushteam/feedkit/rerank"
)

// DefaultNodeFactory 返回注册了全部内置 Node 的工厂，
// 配合 pipeline.LoadFromYAML 可用配置文件声明式组装用户 Pipeline：
//
//	pipeline:
//	  name: home_feed
//	  nodes:
//	    - type: rank.preference
//	    - type: rerank.threshold
//	      config: { threshold: 1.5 }
//	    - type: filter.disliked
//	    - type: filter.rule
//	      config: { rules: ['item.category == "Nightlife"'] }
func DefaultNodeFactory() *pipeline.NodeFactory {
	f := pipeline.NewNodeFactory()

	f.Register("rank.preference", func(_ map[string]interface{}) (pipeline.Node, error) {
		return &rank.PreferenceNode{}, nil
	})

	f.Register("rerank.threshold", func(cfg map[string]interface{}) (pipeline.Node, error) {
		node := &rerank.ThresholdNode{}
		if v, ok := cfg["threshold"]; ok {
			threshold, err := toFloat(v)
			if err != nil {
				return nil, fmt.Errorf("rerank.threshold: %w", err)
			}
			node.Threshold = threshold
		}
		return node, nil
	})

	f.Register("filter.disliked", func(_ map[string]interface{}) (pipeline.Node, error) {
		return &filter.FilterNode{Filters: []filter.Filter{&filter.DislikedFilter{}}}, nil
	})

	f.Register("filter.rule", func(cfg map[string]interface{}) (pipeline.Node, error) {
		rules, err := toStrings(cfg["rules"])
		if err != nil {
			return nil, fmt.Errorf("filter.rule: %w", err)
		}
		return &filter.FilterNode{Filters: []filter.Filter{&filter.RuleFilter{Exprs: rules}}}, nil
	})

	return f
}

func toFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

func toStrings(v interface{}) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected list, got %T", v)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", item)
		}
		out = append(out, s)
	}
	return out, nil
}
