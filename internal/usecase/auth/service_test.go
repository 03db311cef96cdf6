package auth

import (
	"context"
	"errors"
	"testing"

	"opocentral/internal/domain/user"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: map[uuid.UUID]user.User{}, byEmail: map[string]user.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepo) UpdateProfile(context.Context, uuid.UUID, user.ProfileUpdate) error {
	return nil
}

func (m *mockUserRepo) AddSavedOpportunity(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (m *mockUserRepo) AddApplication(context.Context, uuid.UUID, user.Application) error {
	return nil
}

func (m *mockUserRepo) ListApplications(context.Context, uuid.UUID) ([]user.Application, error) {
	return nil, nil
}

func TestService_Register_DefaultsAndEmptyProfile(t *testing.T) {
	svc := NewService(newMockUserRepo())

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "maria",
		Email:    "Maria@Example.com",
		Password: "segredo-forte",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "maria@example.com" {
		t.Fatalf("expected lowercased email, got %q", u.Email)
	}
	if u.UserType != user.TypeJovem {
		t.Fatalf("expected default user type %q, got %q", user.TypeJovem, u.UserType)
	}
	if u.PasswordHash != "" {
		t.Fatalf("returned user must not carry the password hash")
	}
	if u.Profile.Skills == nil || u.Profile.Interests == nil || u.Profile.SavedOpportunities == nil {
		t.Fatalf("expected empty, non-nil profile collections: %+v", u.Profile)
	}
	if len(u.Profile.Skills) != 0 || u.Profile.FullName != "" {
		t.Fatalf("expected empty profile, got %+v", u.Profile)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	in := RegisterInput{Username: "maria", Email: "maria@example.com", Password: "segredo-forte"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := svc.Register(context.Background(), in)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestService_Register_InvalidInput(t *testing.T) {
	svc := NewService(newMockUserRepo())

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"short password", RegisterInput{Username: "maria", Email: "maria@example.com", Password: "curta"}},
		{"empty username", RegisterInput{Email: "maria@example.com", Password: "segredo-forte"}},
		{"empty email", RegisterInput{Username: "maria", Password: "segredo-forte"}},
		{"unknown user type", RegisterInput{Username: "maria", Email: "maria@example.com", Password: "segredo-forte", UserType: "Admin"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_Register_EmployerType(t *testing.T) {
	svc := NewService(newMockUserRepo())

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "empresa",
		Email:    "rh@empresa.com",
		Password: "segredo-forte",
		UserType: user.TypeEmpregador,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.UserType != user.TypeEmpregador {
		t.Fatalf("expected %q, got %q", user.TypeEmpregador, u.UserType)
	}
}

func TestService_Login(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "segredo-forte",
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: "MARIA@example.com", Password: "segredo-forte"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatalf("login result must not carry the password hash")
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "maria@example.com", Password: "errada-demais"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "ninguem@example.com", Password: "segredo-forte"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
