package feed

import (
	"context"
	"reflect"
	"testing"

	"github.com/rushteam/feedkit/core"
	"github.com/rushteam/feedkit/store"
)

func TestMaterializer_Materialize(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	user := core.NewUserProfile("u1")
	user.Feed = []string{"stale1", "stale2"}
	if err := s.PutUser(ctx, user); err != nil {
		t.Fatalf("PutUser: %v", err)
	}

	rctx := core.NewRecommendContext(user)
	items := []*core.Item{core.NewItem("e1"), nil, core.NewItem("e2")}

	got, err := NewMaterializer(s).Materialize(ctx, rctx, items)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"e1", "e2"}) {
		t.Errorf("materialized = %v, want [e1 e2]", got)
	}

	stored, _ := s.GetUser(ctx, "u1")
	if !reflect.DeepEqual(stored.Feed, []string{"e1", "e2"}) {
		t.Errorf("Feed = %v, want stale feed fully replaced", stored.Feed)
	}
}

func TestMaterializer_StripsDisliked(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	user := &core.UserProfile{ID: "u1", Disliked: []string{"e2"}}
	if err := s.PutUser(ctx, user); err != nil {
		t.Fatalf("PutUser: %v", err)
	}

	rctx := core.NewRecommendContext(user)
	items := []*core.Item{core.NewItem("e1"), core.NewItem("e2")}

	got, err := NewMaterializer(s).Materialize(ctx, rctx, items)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"e1"}) {
		t.Errorf("materialized = %v, disliked must never reach the feed", got)
	}
}

func TestMaterializer_UserVanished(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	// 快照读取后用户被删除：写回透传 not-found
	user := core.NewUserProfile("u1")
	rctx := core.NewRecommendContext(user)

	_, err := NewMaterializer(s).Materialize(ctx, rctx, []*core.Item{core.NewItem("e1")})
	if !core.IsNotFound(err) {
		t.Errorf("Materialize error = %v, want not-found passthrough", err)
	}
}
