package botlist

import (
	"context"
	"errors"
	"testing"

	"github.com/PancyStudios/PancyListGo/pkg/models"
)

func TestGetUser(t *testing.T) {
	env := newTestEnv()
	env.users.list = append(env.users.list, &models.User{ID: "u1", Username: "user"})

	user, err := env.svc.GetUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.Username != "user" {
		t.Errorf("unexpected user %+v", user)
	}

	var nferr *NotFoundError
	if _, err := env.svc.GetUser(context.Background(), "ghost"); !errors.As(err, &nferr) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestRegisterLogin(t *testing.T) {
	env := newTestEnv()

	if err := env.svc.RegisterLogin(context.Background(), &models.User{ID: "u1", Username: "first"}); err != nil {
		t.Fatalf("RegisterLogin failed: %v", err)
	}
	if len(env.users.list) != 1 {
		t.Fatalf("expected one user, got %d", len(env.users.list))
	}
	if env.users.list[0].Bots == nil {
		t.Error("Bots must be initialized to an empty slice")
	}

	if err := env.svc.RegisterLogin(context.Background(), &models.User{ID: "u1", Username: "renamed"}); err != nil {
		t.Fatalf("RegisterLogin failed: %v", err)
	}
	if len(env.users.list) != 1 {
		t.Errorf("login must upsert, not duplicate, got %d users", len(env.users.list))
	}
	if env.users.list[0].Username != "renamed" {
		t.Errorf("expected refreshed profile, got %q", env.users.list[0].Username)
	}
}
