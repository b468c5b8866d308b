package postgre

import (
	"testing"

	repo "github.com/fsarta/synapse/internal/user/repository"
)

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repo.GetOneUserOptions
		wantCond string
		wantArgs int
	}{
		{"id", repo.GetOneUserOptions{ID: "1"}, "id = $1", 1},
		{"email", repo.GetOneUserOptions{Email: "a@b"}, "email = $1", 1},
		{"both", repo.GetOneUserOptions{ID: "1", Email: "a@b"}, "id = $1 AND email = $2", 2},
		{"none", repo.GetOneUserOptions{}, "FALSE", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, args := r.buildGetOneQuery(tt.opt)
			if cond != tt.wantCond {
				t.Errorf("cond = %q, want %q", cond, tt.wantCond)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}
