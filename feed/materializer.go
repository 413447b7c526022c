package feed

import (
	"context"
	"fmt"

	"github.com/rushteam/feedkit/core"
)

// Materializer 把排序/过滤后的候选落成用户的 feed 列表。
//
// 写入是整属性覆盖：每次运行重算全量 feed，不与旧 feed 合并。
// 写入前再剥一次 disliked——候选集切分与 disliked 列表可能来自
// 用户文档的两次不同读取，不保证同步，这层兜底必须保留，
// 即使管线里已经挂了 filter.DislikedFilter。
type Materializer struct {
	Users core.UserStore
}

func NewMaterializer(users core.UserStore) *Materializer {
	return &Materializer{Users: users}
}

// Materialize 提取候选 ID、剥除 disliked、整体覆盖写回用户 feed。
// 返回最终写入的 ID 列表。用户文档已不存在时透传 ErrUserNotFound
// （core.IsNotFound 可判），调用方按"该用户跳过"处理。
func (m *Materializer) Materialize(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]string, error) {
	if m.Users == nil {
		return nil, core.NewDomainError(core.ModuleFeed, core.ErrorCodeInvalidInput, "feed: user store is required")
	}

	var disliked map[string]struct{}
	if rctx.User != nil {
		disliked = rctx.User.DislikedSet()
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if _, bad := disliked[item.ID]; bad {
			continue
		}
		ids = append(ids, item.ID)
	}

	if err := m.Users.WriteFeed(ctx, rctx.UserID, ids); err != nil {
		if core.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("write feed for user %s: %w", rctx.UserID, err)
	}
	return ids, nil
}
