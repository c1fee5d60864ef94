package service

import (
	"context"
	"errors"
	"testing"

	dom "github.com/Ashwanthreddy-18/primetrade-fullstack-app/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	getByEmailFn func(ctx context.Context, email string) (dom.User, error)
	createFn     func(ctx context.Context, name, email, passwordHash string) (dom.User, error)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserRepo) Create(ctx context.Context, name, email, passwordHash string) (dom.User, error) {
	return m.createFn(ctx, name, email, passwordHash)
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	var gotEmail, gotHash string
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, name, email, passwordHash string) (dom.User, error) {
			gotEmail = email
			gotHash = passwordHash
			return dom.User{ID: 1, Name: name, Email: email, PasswordHash: passwordHash}, nil
		},
	}
	svc := NewUserService(repo)

	u, err := svc.Register(context.Background(), "Alice", "  Alice@X.Com ", "p1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if gotEmail != "alice@x.com" {
		t.Errorf("expected lowercased trimmed email, got %q", gotEmail)
	}
	if gotHash == "p1" {
		t.Fatal("password stored in plain form")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(gotHash), []byte("p1")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if u.ID != 1 {
		t.Errorf("expected user id 1, got %d", u.ID)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, name, email, passwordHash string) (dom.User, error) {
			return dom.User{}, &pgconn.PgError{Code: "23505"}
		},
	}
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), "", "a@x.com", "p1")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Register_MissingFields(t *testing.T) {
	svc := NewUserService(&mockUserRepo{
		createFn: func(ctx context.Context, name, email, passwordHash string) (dom.User, error) {
			t.Fatal("repo must not be called")
			return dom.User{}, nil
		},
	})

	if _, err := svc.Register(context.Background(), "", "", "p1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("empty email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "", "a@x.com", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_ValidateCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("p1"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	stored := dom.User{ID: 5, Email: "a@x.com", PasswordHash: string(hash)}
	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (dom.User, error) {
			if email == "a@x.com" {
				return stored, nil
			}
			return dom.User{}, pgx.ErrNoRows
		},
	}
	svc := NewUserService(repo)

	u, err := svc.ValidateCredentials(context.Background(), "a@x.com", "p1")
	if err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	if u.ID != 5 {
		t.Errorf("expected user id 5, got %d", u.ID)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, errWrongPw := svc.ValidateCredentials(context.Background(), "a@x.com", "wrong")
	_, errNoUser := svc.ValidateCredentials(context.Background(), "nobody@x.com", "p1")
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", errNoUser)
	}
	if errWrongPw.Error() != errNoUser.Error() {
		t.Error("wrong-password and unknown-email failures must look the same")
	}
}
