package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/rushteam/feedkit/core"
)

// Redis key 布局：事件与用户文档各放一个 Hash，field 为文档 ID，
// value 为 JSON 文档。管线按"每次运行读一次全量快照"的方式消费，
// HGetAll 一次网络往返取整个集合。
const (
	eventsKey = "feedkit:events"
	usersKey  = "feedkit:users"
)

// RedisStore 是 Redis 实现的事件/用户存储。
// 生产环境常用，支持持久化、集群、哨兵等。
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Name() string { return "redis" }

func (r *RedisStore) ReadAllEvents(ctx context.Context) ([]*core.Event, error) {
	docs, err := r.client.HGetAll(ctx, eventsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}

	out := make([]*core.Event, 0, len(docs))
	for id, doc := range docs {
		var ev core.Event
		if err := json.Unmarshal([]byte(doc), &ev); err != nil {
			return nil, fmt.Errorf("decode event %s: %w", id, err)
		}
		ev.ID = id
		out = append(out, &ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *RedisStore) PutEvent(ctx context.Context, event *core.Event) error {
	doc, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", event.ID, err)
	}
	return r.client.HSet(ctx, eventsKey, event.ID, doc).Err()
}

func (r *RedisStore) ReadAllUsers(ctx context.Context) ([]*core.UserProfile, error) {
	docs, err := r.client.HGetAll(ctx, usersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}

	out := make([]*core.UserProfile, 0, len(docs))
	for id, doc := range docs {
		user, err := decodeUser(id, []byte(doc))
		if err != nil {
			return nil, err
		}
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *RedisStore) GetUser(ctx context.Context, userID string) (*core.UserProfile, error) {
	doc, err := r.client.HGet(ctx, usersKey, userID).Bytes()
	if err == redis.Nil {
		return nil, core.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read user %s: %w", userID, err)
	}
	return decodeUser(userID, doc)
}

func (r *RedisStore) PutUser(ctx context.Context, user *core.UserProfile) error {
	doc, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user %s: %w", user.ID, err)
	}
	return r.client.HSet(ctx, usersKey, user.ID, doc).Err()
}

func (r *RedisStore) AppendInteractions(ctx context.Context, userID, field string, eventIDs []string) error {
	user, err := r.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	switch field {
	case core.FieldLiked:
		user.Liked = appendUnique(user.Liked, eventIDs)
	case core.FieldDisliked:
		user.Disliked = appendUnique(user.Disliked, eventIDs)
	case core.FieldBookmarked:
		user.Bookmarked = appendUnique(user.Bookmarked, eventIDs)
	case core.FieldOwned:
		user.Owned = appendUnique(user.Owned, eventIDs)
	default:
		return core.NewDomainError(core.ModuleStore, core.ErrorCodeInvalidInput, "store: unknown interaction field "+field)
	}

	return r.PutUser(ctx, user)
}

func (r *RedisStore) WriteFeed(ctx context.Context, userID string, eventIDs []string) error {
	// 读-改-写：用户文档可能在快照读取之后被删除，
	// 此时返回 ErrUserNotFound，由调用方按"该用户跳过"处理。
	user, err := r.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	user.Feed = append([]string(nil), eventIDs...)
	return r.PutUser(ctx, user)
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// decodeUser 反序列化用户文档。交互字段不是数组时按空列表处理
// （外部写入方偶尔会把字段写成 null 或标量，不作为错误对待）。
func decodeUser(id string, doc []byte) (*core.UserProfile, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}

	user := core.NewUserProfile(id)
	stringField(raw, "username", &user.Username)
	stringField(raw, "email", &user.Email)
	user.Liked = listField(raw, "likedEvents")
	user.Disliked = listField(raw, "dislikedEvents")
	user.Bookmarked = listField(raw, "bookmarkedEvents")
	user.Owned = listField(raw, "myEvents")
	user.Feed = listField(raw, "homeEvents")
	return user, nil
}

func stringField(raw map[string]json.RawMessage, key string, dst *string) {
	if msg, ok := raw[key]; ok {
		var s string
		if json.Unmarshal(msg, &s) == nil {
			*dst = s
		}
	}
}

func listField(raw map[string]json.RawMessage, key string) []string {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	var list []string
	if err := json.Unmarshal(msg, &list); err != nil {
		return nil
	}
	return list
}

// 确保 RedisStore 实现了 core.EventStore 和 core.UserStore 接口
var _ core.EventStore = (*RedisStore)(nil)
var _ core.UserStore = (*RedisStore)(nil)
