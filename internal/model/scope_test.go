package model

import (
	"context"
	"testing"
)

func TestScopeContext(t *testing.T) {
	if _, ok := GetScopeFromContext(context.Background()); ok {
		t.Error("expected no scope on empty context")
	}

	ctx := SetScopeToContext(context.Background(), Scope{UserID: "u1", Email: "a@b.c", Tier: TierFree})
	sc, ok := GetScopeFromContext(ctx)
	if !ok {
		t.Fatal("expected scope")
	}
	if sc.UserID != "u1" || sc.Tier != TierFree {
		t.Errorf("unexpected scope %+v", sc)
	}

	ctx = SetScopeToContext(context.Background(), Scope{})
	if _, ok := GetScopeFromContext(ctx); ok {
		t.Error("scope without user id must not count as authenticated")
	}
}
