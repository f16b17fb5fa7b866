package user

import (
	"buddyfridge/domain"
	"buddyfridge/entities"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) Insert(_ context.Context, user *entities.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepository) GetByID(_ context.Context, id string) (*entities.User, error) {
	for _, user := range f.users {
		if user.ID.String() == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

type fakeFrequentRepository struct {
	items map[string][]*entities.FrequentItem
}

func newFakeFrequentRepository() *fakeFrequentRepository {
	return &fakeFrequentRepository{items: make(map[string][]*entities.FrequentItem)}
}

func (f *fakeFrequentRepository) Insert(_ context.Context, item *entities.FrequentItem) error {
	userID := item.UserID.String()
	f.items[userID] = append(f.items[userID], item)
	return nil
}

func (f *fakeFrequentRepository) Save(context.Context, *entities.FrequentItem) error { return nil }

func (f *fakeFrequentRepository) GetByNameKey(context.Context, string, string) (*entities.FrequentItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFrequentRepository) Delete(context.Context, string, string) error { return nil }

func (f *fakeFrequentRepository) ListByUser(_ context.Context, userID string) ([]*entities.FrequentItem, error) {
	return f.items[userID], nil
}

func (f *fakeFrequentRepository) SearchByName(context.Context, string, string) ([]*entities.FrequentItem, error) {
	return nil, nil
}

func (f *fakeFrequentRepository) CountByUser(_ context.Context, userID string) (int64, error) {
	return int64(len(f.items[userID])), nil
}

type fakeJWTService struct{}

func (fakeJWTService) GenerateTokenUser(userId string) string { return "token-" + userId }

func (fakeJWTService) ValidateTokenUser(string) (*jwtlib.Token, error) { return nil, nil }

func (fakeJWTService) GetUserIDByToken(token string) (string, error) {
	return strings.TrimPrefix(token, "token-"), nil
}

func newUserFixture() (UserService, *fakeUserRepository, *fakeFrequentRepository) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	users := newFakeUserRepository()
	frequents := newFakeFrequentRepository()
	svc := NewUserService(users, frequents, fakeJWTService{}, fixedClock{now})
	return svc, users, frequents
}

func TestRegisterSeedsStarterPack(t *testing.T) {
	svc, _, frequents := newUserFixture()

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "hunter22aa",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if res.Email != "ada@example.com" {
		t.Errorf("email should be lowercased, got %q", res.Email)
	}

	count, _ := frequents.CountByUser(context.Background(), res.ID)
	if count == 0 {
		t.Error("registration should seed the starter memories")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserFixture()

	req := domain.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "hunter22aa"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Register(context.Background(), req); !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _, _ := newUserFixture()

	registered, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22aa",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter22aa",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.HasSuffix(res.Token, registered.ID) {
		t.Errorf("token should be issued for the registered user, got %q", res.Token)
	}

	if _, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	}); !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Errorf("expected ErrCredentialsInvalid, got %v", err)
	}

	if _, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	}); !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Errorf("unknown email should look like bad credentials, got %v", err)
	}
}

func TestMe(t *testing.T) {
	svc, _, _ := newUserFixture()

	registered, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22aa",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Me(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if res.Name != "Ada" {
		t.Errorf("unexpected user %+v", res)
	}

	if _, err := svc.Me(context.Background(), uuid.NewString()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
