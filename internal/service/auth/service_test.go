package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamestore/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	nextID  int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byEmail: map[string]*domain.User{},
		byID:    map[string]*domain.User{},
	}
}

func (r *memUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[u.Email]; exists {
		return nil, domain.ErrAlreadyExists
	}
	r.nextID++
	u.ID = "user-" + string(rune('0'+r.nextID))
	r.byEmail[u.Email] = &u
	r.byID[u.ID] = &u
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func newTestService() (*Service, *memUserRepo) {
	repo := newMemUserRepo()
	return New(repo, "test-secret", time.Hour), repo
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"missing username", RegisterInput{Email: "a@b.com", Password: "password123"}},
		{"missing email", RegisterInput{Username: "alice", Password: "password123"}},
		{"bad email", RegisterInput{Username: "alice", Email: "not-an-email", Password: "password123"}},
		{"short password", RegisterInput{Username: "alice", Email: "a@b.com", Password: "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := svc.Register(ctx, tc.in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	svc, repo := newTestService()

	user, token, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("role = %q, want %q", user.Role, domain.RoleUser)
	}

	stored := repo.byEmail["alice@example.com"]
	if stored.PasswordHash == "password123" {
		t.Fatal("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")) != nil {
		t.Error("stored hash does not match the password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	in := RegisterInput{Username: "alice", Email: "a@b.com", Password: "password123"}

	if _, _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, _, err := svc.Register(ctx, in); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@b.com", Password: "password123"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "a@b.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@b.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: err = %v", err)
	}

	user, token, err := svc.Login(ctx, "A@B.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.Username != "alice" {
		t.Errorf("username = %q", user.Username)
	}
}

func TestLookupByToken(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	registered, token, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@b.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := svc.LookupByToken(ctx, token)
	if err != nil {
		t.Fatalf("LookupByToken: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("id = %q, want %q", user.ID, registered.ID)
	}

	if _, err := svc.LookupByToken(ctx, "not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage token: err = %v", err)
	}

	// Token signed with another secret must be rejected.
	other := New(repo, "other-secret", time.Hour)
	_, otherToken, err := other.Login(ctx, "a@b.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := svc.LookupByToken(ctx, otherToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign token: err = %v", err)
	}

	// Deleted user invalidates an otherwise valid token.
	delete(repo.byID, registered.ID)
	if _, err := svc.LookupByToken(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("deleted user: err = %v", err)
	}
}

func TestTokenExpiry(t *testing.T) {
	repo := newMemUserRepo()
	svc := New(repo, "test-secret", -time.Minute)

	_, token, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Email: "a@b.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.LookupByToken(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token: err = %v", err)
	}
}
