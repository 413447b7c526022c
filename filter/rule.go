package filter

import (
	"context"

	"github.com/rushteam/feedkit/core"
	"github.com/rushteam/feedkit/pkg/dsl"
)

// RuleFilter 按 CEL 规则表达式过滤候选：任何一条规则求值为 true 即过滤。
// 规则来自运营配置（config.Recommend.ExcludeRules），典型用法：
//
//	exclude_rules:
//	  - 'item.category == "Nightlife"'
//	  - 'item.price > 0.9'
type RuleFilter struct {
	// Exprs CEL 规则表达式列表（空列表不过滤任何候选）
	Exprs []string
}

func (f *RuleFilter) Name() string {
	return "filter.rule"
}

func (f *RuleFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	if len(f.Exprs) == 0 {
		return false, nil
	}

	eval := dsl.NewEval(item, rctx)
	for _, expr := range f.Exprs {
		if expr == "" {
			continue
		}
		hit, err := eval.Evaluate(expr)
		if err != nil {
			return false, err
		}
		if hit {
			return true, nil
		}
	}
	return false, nil
}

var _ Filter = (*RuleFilter)(nil)
