package datagen

import (
	"context"
	"fmt"

	"github.com/rushteam/feedkit/core"
)

// Seeder 用 Generator 的产出填充存储：用户、每城市的事件语料、
// 以及随机播种的交互历史。全部通过 core 的存储接口写入，
// 与持久化后端解耦。
type Seeder struct {
	Events core.EventStore
	Users  core.UserStore

	gen *Generator
}

func NewSeeder(events core.EventStore, users core.UserStore, gen *Generator) *Seeder {
	return &Seeder{Events: events, Users: users, gen: gen}
}

// Seed 生成 numUsers 个用户与全量事件语料（每个城市的每条街道一个事件，
// 事件创建者在用户间轮转），然后给每个用户播种交互历史。
// 返回生成的用户与事件 ID。
func (s *Seeder) Seed(ctx context.Context, numUsers int) (userIDs, eventIDs []string, err error) {
	if numUsers <= 0 {
		numUsers = len(Cities)
	}

	for i := 0; i < numUsers; i++ {
		user := s.gen.User()
		if err := s.Users.PutUser(ctx, user); err != nil {
			return nil, nil, fmt.Errorf("seed user: %w", err)
		}
		userIDs = append(userIDs, user.ID)
	}

	for i, city := range Cities {
		creator := userIDs[i%len(userIDs)]
		for _, street := range CityStreets[city] {
			ev := s.gen.Event(city, street, creator)
			if err := s.Events.PutEvent(ctx, ev); err != nil {
				return nil, nil, fmt.Errorf("seed event: %w", err)
			}
			eventIDs = append(eventIDs, ev.ID)
		}
	}

	for _, userID := range userIDs {
		if err := s.SeedInteractions(ctx, userID, eventIDs); err != nil {
			return nil, nil, err
		}
	}

	return userIDs, eventIDs, nil
}

// 交互抽样的切分边界：36 个抽样事件分为
// disliked(10) / liked(14) / bookmarked(2) / bookmarked+liked(6) /
// owned+liked(2) / owned+liked+bookmarked(2)。
// 重叠组刻意制造权重 2 和 3 的训练标签。
var interactionCuts = [...]int{10, 24, 26, 32, 34, 36}

// SeedInteractions 给一个用户播种随机交互历史（集合并集语义追加）。
// 事件不足 36 个时按比例缩小抽样。
func (s *Seeder) SeedInteractions(ctx context.Context, userID string, eventIDs []string) error {
	sample := append([]string(nil), eventIDs...)
	s.gen.rng.Shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})

	total := interactionCuts[len(interactionCuts)-1]
	n := len(sample)
	if n > total {
		n = total
	}

	cut := func(i int) int {
		return interactionCuts[i] * n / total
	}

	disliked := sample[:cut(0)]
	liked := sample[cut(0):cut(1)]
	bookmarked := sample[cut(1):cut(2)]
	bookmarkedLiked := sample[cut(2):cut(3)]
	ownedLiked := sample[cut(3):cut(4)]
	ownedAll := sample[cut(4):cut(5)]

	appends := []struct {
		field string
		ids   []string
	}{
		{core.FieldDisliked, disliked},
		{core.FieldLiked, concat(liked, bookmarkedLiked, ownedLiked, ownedAll)},
		{core.FieldBookmarked, concat(bookmarked, bookmarkedLiked, ownedAll)},
		{core.FieldOwned, concat(ownedAll, ownedLiked)},
	}

	for _, a := range appends {
		if len(a.ids) == 0 {
			continue
		}
		if err := s.Users.AppendInteractions(ctx, userID, a.field, a.ids); err != nil {
			return fmt.Errorf("seed interactions for user %s: %w", userID, err)
		}
	}
	return nil
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
