package datagen

import (
	"context"
	"testing"

	"github.com/rushteam/feedkit/core"
	"github.com/rushteam/feedkit/store"
)

func TestSeeder_Seed(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	seeder := NewSeeder(s, s, NewGenerator(42))

	userIDs, eventIDs, err := seeder.Seed(ctx, 3)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(userIDs) != 3 {
		t.Fatalf("seeded %d users, want 3", len(userIDs))
	}

	// 每个城市每条街道一个事件
	wantEvents := 0
	for _, city := range Cities {
		wantEvents += len(CityStreets[city])
	}
	if len(eventIDs) != wantEvents {
		t.Errorf("seeded %d events, want %d", len(eventIDs), wantEvents)
	}

	events, err := s.ReadAllEvents(ctx)
	if err != nil {
		t.Fatalf("ReadAllEvents: %v", err)
	}
	if len(events) != wantEvents {
		t.Errorf("store holds %d events, want %d", len(events), wantEvents)
	}

	// 每个用户都有可训练的交互历史，且 disliked 与正向列表不重叠
	for _, id := range userIDs {
		u, err := s.GetUser(ctx, id)
		if err != nil {
			t.Fatalf("GetUser(%s): %v", id, err)
		}
		if !u.HasInteractions() {
			t.Errorf("user %s seeded without interactions", id)
		}
		if len(u.Disliked) == 0 || len(u.Liked) == 0 {
			t.Errorf("user %s missing negative or positive samples", id)
		}

		positive := make(map[string]struct{})
		for _, e := range u.Liked {
			positive[e] = struct{}{}
		}
		for _, e := range u.Bookmarked {
			positive[e] = struct{}{}
		}
		for _, e := range u.Owned {
			positive[e] = struct{}{}
		}
		for _, e := range u.Disliked {
			if _, ok := positive[e]; ok {
				t.Errorf("user %s has %s both disliked and positive", id, e)
			}
		}
	}
}

func TestSeeder_SeedInteractions_SmallCorpus(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	if err := s.PutUser(ctx, core.NewUserProfile("u1")); err != nil {
		t.Fatalf("PutUser: %v", err)
	}

	// 语料远小于 36 个抽样事件时按比例缩小，不 panic 不越界
	seeder := NewSeeder(s, s, NewGenerator(42))
	if err := seeder.SeedInteractions(ctx, "u1", []string{"e1", "e2", "e3", "e4", "e5"}); err != nil {
		t.Fatalf("SeedInteractions: %v", err)
	}

	u, err := s.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if !u.HasInteractions() {
		t.Error("small corpus should still seed some interactions")
	}
}
