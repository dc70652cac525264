package user

import (
	"context"
	"errors"
	"testing"

	"myMiloStore/domain"
	"myMiloStore/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type fakeUserRepo struct {
	users  map[string]domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, ok := f.users[user.Username]; ok {
		return domain.ErrUsernameTaken
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	u, ok := f.users[username]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, validator.New())

	first, err := svc.Register(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err = svc.Register(context.Background(), "alice", "other")
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}

	// the original account is untouched
	stored, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatal(err)
	}
	if stored.ID != first.ID || !utils.CheckPassword("pw1", stored.Password) {
		t.Error("first account changed by the failed second registration")
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, validator.New())

	if _, err := svc.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	stored := repo.users["alice"]
	if stored.Password == "pw1" {
		t.Error("password stored in plain text")
	}
	if !utils.CheckPassword("pw1", stored.Password) {
		t.Error("stored hash does not verify the original password")
	}
}

func TestRegister_RequiresCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, validator.New())

	if _, err := svc.Register(context.Background(), "", "pw1"); err == nil {
		t.Error("expected missing username to fail")
	}
	if _, err := svc.Register(context.Background(), "alice", ""); err == nil {
		t.Error("expected missing password to fail")
	}
}

func TestAuthenticate_Exact(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, validator.New())

	if _, err := svc.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatal(err)
	}

	user, err := svc.Authenticate(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("username = %q, want alice", user.Username)
	}

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "alice", "pw2"},
		{"password case", "alice", "PW1"},
		{"username case", "Alice", "pw1"},
		{"unknown user", "bob", "pw1"},
	}
	for _, tc := range cases {
		_, err := svc.Authenticate(context.Background(), tc.username, tc.password)
		if !errors.Is(err, domain.ErrInvalidLogin) {
			t.Errorf("%s: err = %v, want ErrInvalidLogin", tc.name, err)
		}
	}
}
