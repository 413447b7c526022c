package store

import (
	"context"
	"sort"
	"sync"

	"github.com/rushteam/feedkit/core"
)

// MemoryStore 是内存实现的事件/用户存储，用于测试/开发/原型。
// 读操作返回副本：调用方拿到的是一次性的不可变快照，
// 后续写入不会影响已读出的文档。
type MemoryStore struct {
	mu     sync.RWMutex
	events map[string]*core.Event
	users  map[string]*core.UserProfile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events: make(map[string]*core.Event),
		users:  make(map[string]*core.UserProfile),
	}
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) ReadAllEvents(ctx context.Context) ([]*core.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*core.Event, 0, len(m.events))
	for _, ev := range m.events {
		cp := *ev
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) PutEvent(ctx context.Context, event *core.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *event
	m.events[event.ID] = &cp
	return nil
}

func (m *MemoryStore) ReadAllUsers(ctx context.Context) ([]*core.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*core.UserProfile, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, copyUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) GetUser(ctx context.Context, userID string) (*core.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[userID]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (m *MemoryStore) PutUser(ctx context.Context, user *core.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[user.ID] = copyUser(user)
	return nil
}

func (m *MemoryStore) DeleteUser(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, userID)
	return nil
}

func (m *MemoryStore) AppendInteractions(ctx context.Context, userID, field string, eventIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return core.ErrUserNotFound
	}

	switch field {
	case core.FieldLiked:
		u.Liked = appendUnique(u.Liked, eventIDs)
	case core.FieldDisliked:
		u.Disliked = appendUnique(u.Disliked, eventIDs)
	case core.FieldBookmarked:
		u.Bookmarked = appendUnique(u.Bookmarked, eventIDs)
	case core.FieldOwned:
		u.Owned = appendUnique(u.Owned, eventIDs)
	default:
		return core.NewDomainError(core.ModuleStore, core.ErrorCodeInvalidInput, "store: unknown interaction field "+field)
	}
	return nil
}

func (m *MemoryStore) WriteFeed(ctx context.Context, userID string, eventIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return core.ErrUserNotFound
	}

	// 整属性覆盖，不与旧 feed 合并
	u.Feed = append([]string(nil), eventIDs...)
	return nil
}

func (m *MemoryStore) Close() error { return nil }

func copyUser(u *core.UserProfile) *core.UserProfile {
	cp := *u
	cp.Liked = append([]string(nil), u.Liked...)
	cp.Disliked = append([]string(nil), u.Disliked...)
	cp.Bookmarked = append([]string(nil), u.Bookmarked...)
	cp.Owned = append([]string(nil), u.Owned...)
	cp.Feed = append([]string(nil), u.Feed...)
	return &cp
}

// appendUnique 以集合并集语义追加（与文档库的 array-union 更新对齐）
func appendUnique(list []string, ids []string) []string {
	seen := make(map[string]struct{}, len(list))
	for _, id := range list {
		seen[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		list = append(list, id)
	}
	return list
}

// 确保 MemoryStore 实现了 core.EventStore 和 core.UserStore 接口
var _ core.EventStore = (*MemoryStore)(nil)
var _ core.UserStore = (*MemoryStore)(nil)
