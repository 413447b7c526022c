package filter

import (
	"context"

	"github.com/rushteam/feedkit/core"
)

// DislikedFilter 过滤掉当前用户 disliked 列表中的事件。
//
// 候选集切分在构造上已经排除了所有被交互过的事件（含 disliked），
// 这里是第二道防线：disliked 列表与候选集可能来自用户文档的
// 两次不同读取，二者不保证同步，所以两层都必须存在。
type DislikedFilter struct {
	// Store 用于补充读取 disliked 列表（可选；nil 时只用 rctx 快照）
	Store DislikedStore
}

// DislikedStore 是 disliked 列表的补充存储接口。
type DislikedStore interface {
	// GetDisliked 获取用户当前的 disliked 事件 ID 列表
	GetDisliked(ctx context.Context, userID string) ([]string, error)
}

func (f *DislikedFilter) Name() string {
	return "filter.disliked"
}

func (f *DislikedFilter) ShouldFilter(
	ctx context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	if rctx == nil || rctx.User == nil {
		return false, nil
	}

	for _, id := range rctx.User.Disliked {
		if item.ID == id {
			return true, nil
		}
	}

	if f.Store != nil {
		ids, err := f.Store.GetDisliked(ctx, rctx.UserID)
		if err != nil {
			// Store 读取失败时退回快照判断，不拦截整个链路
			return false, nil
		}
		for _, id := range ids {
			if item.ID == id {
				return true, nil
			}
		}
	}

	return false, nil
}

var _ Filter = (*DislikedFilter)(nil)
