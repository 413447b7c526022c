package core

import "context"

// EventStore 是事件语料的存储领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 管线把 ReadAll 的结果当作一次运行内不可变的快照
//
// 实现：
//   - store.MemoryStore（测试/开发）
//   - store.RedisStore（生产）
type EventStore interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// ReadAllEvents 读取全部事件语料（一次运行取一次快照）
	ReadAllEvents(ctx context.Context) ([]*Event, error)

	// PutEvent 写入/覆盖单个事件文档（生成器使用）
	PutEvent(ctx context.Context, event *Event) error

	// Close 关闭连接/释放资源
	Close() error
}

// UserStore 是用户文档的存储领域接口。
//
// WriteFeed 是整属性覆盖语义（不追加不合并）：每次运行重算全量 feed。
// 用户文档在读取与写回之间可能被删除，此时返回 ErrUserNotFound，
// 调用方按"该用户跳过"处理，不影响批次内其他用户。
type UserStore interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// ReadAllUsers 读取全部用户文档（一次运行取一次快照）
	ReadAllUsers(ctx context.Context) ([]*UserProfile, error)

	// GetUser 按 ID 读取单个用户文档；不存在返回 ErrUserNotFound
	GetUser(ctx context.Context, userID string) (*UserProfile, error)

	// PutUser 写入/覆盖单个用户文档（生成器使用）
	PutUser(ctx context.Context, user *UserProfile) error

	// AppendInteractions 向用户的交互列表追加事件 ID（集合并集语义，
	// 生成器播种交互时使用；field 取 liked/disliked/bookmarked/owned）
	AppendInteractions(ctx context.Context, userID, field string, eventIDs []string) error

	// WriteFeed 整体覆盖用户的 feed 属性；用户不存在返回 ErrUserNotFound
	WriteFeed(ctx context.Context, userID string, eventIDs []string) error

	// Close 关闭连接/释放资源
	Close() error
}

// 交互列表字段名（AppendInteractions 的 field 取值）
const (
	FieldLiked      = "liked"
	FieldDisliked   = "disliked"
	FieldBookmarked = "bookmarked"
	FieldOwned      = "owned"
)
