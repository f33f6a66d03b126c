package auth

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClientRepo struct {
	mock.Mock
}

func (m *mockClientRepo) FindAll(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *mockClientRepo) FindByID(ctx context.Context, clientID int64) (model.Client, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(model.Client), args.Error(1)
}

func (m *mockClientRepo) FindByEmail(ctx context.Context, email string) (model.Client, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Client), args.Error(1)
}

func (m *mockClientRepo) Create(ctx context.Context, c *model.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockClientRepo) Update(ctx context.Context, c model.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockClientRepo) Delete(ctx context.Context, clientID int64) error {
	return m.Called(ctx, clientID).Error(0)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type stubIssuer struct {
	token     string
	expiresAt time.Time
}

func (i *stubIssuer) Issue(clientID int64, role model.Role, now time.Time) (string, time.Time, error) {
	return i.token, i.expiresAt, nil
}

func TestRegisterClientUsecase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and assigns the CLIENT role", func(t *testing.T) {
		repo := new(mockClientRepo)
		repo.On("FindByEmail", ctx, "durand@example.com").Return(model.Client{}, repository.ErrNotFound)
		repo.On("Create", ctx, mock.MatchedBy(func(c *model.Client) bool {
			return c.Email == "durand@example.com" &&
				c.Role == model.RoleClient &&
				c.PasswordHash != "" &&
				c.PasswordHash != "motdepasse123"
		})).Return(nil)

		uc := NewRegisterClientUsecase(repo, NewBcryptPasswordHasher(4))

		out, err := uc.Execute(ctx, RegisterClientInput{
			Nom:      "Durand",
			Email:    "durand@example.com",
			Password: "motdepasse123",
		})
		require.NoError(t, err)
		// レスポンスにはハッシュを含めない
		assert.Empty(t, out.Client.PasswordHash)
		repo.AssertExpectations(t)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		uc := NewRegisterClientUsecase(new(mockClientRepo), NewBcryptPasswordHasher(4))

		_, err := uc.Execute(ctx, RegisterClientInput{
			Nom:      "Durand",
			Email:    "durand@example.com",
			Password: "court",
		})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("rejects malformed emails", func(t *testing.T) {
		uc := NewRegisterClientUsecase(new(mockClientRepo), NewBcryptPasswordHasher(4))

		_, err := uc.Execute(ctx, RegisterClientInput{
			Nom:      "Durand",
			Email:    "pas-un-email",
			Password: "motdepasse123",
		})
		assert.ErrorIs(t, err, ErrInvalidEmailFormat)
	})

	t.Run("rejects duplicate emails", func(t *testing.T) {
		repo := new(mockClientRepo)
		repo.On("FindByEmail", ctx, "durand@example.com").
			Return(model.Client{ID: 1, Email: "durand@example.com"}, nil)

		uc := NewRegisterClientUsecase(repo, NewBcryptPasswordHasher(4))

		_, err := uc.Execute(ctx, RegisterClientInput{
			Nom:      "Durand",
			Email:    "durand@example.com",
			Password: "motdepasse123",
		})
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLoginUsecase_Execute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	hasher := NewBcryptPasswordHasher(4)
	hashed, err := hasher.Hash("motdepasse123")
	require.NoError(t, err)

	stored := model.Client{
		ID:           5,
		Email:        "durand@example.com",
		PasswordHash: hashed,
		Role:         model.RoleClient,
	}

	t.Run("issues a token and strips the hash", func(t *testing.T) {
		repo := new(mockClientRepo)
		repo.On("FindByEmail", ctx, "durand@example.com").Return(stored, nil)

		issuer := &stubIssuer{token: "jeton", expiresAt: now.Add(15 * time.Minute)}
		uc := NewLoginUsecase(repo, NewBcryptPasswordVerifier(), issuer, &fixedClock{now: now})

		out, err := uc.Execute(ctx, LoginInput{Email: "durand@example.com", Password: "motdepasse123"})
		require.NoError(t, err)
		assert.Equal(t, "jeton", out.AccessToken)
		assert.Equal(t, 900, out.ExpiresIn)
		assert.Empty(t, out.Client.PasswordHash)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		repo := new(mockClientRepo)
		repo.On("FindByEmail", ctx, "durand@example.com").Return(stored, nil)

		uc := NewLoginUsecase(repo, NewBcryptPasswordVerifier(), &stubIssuer{}, &fixedClock{now: now})

		_, err := uc.Execute(ctx, LoginInput{Email: "durand@example.com", Password: "mauvais"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email fails the same way", func(t *testing.T) {
		repo := new(mockClientRepo)
		repo.On("FindByEmail", ctx, "inconnu@example.com").Return(model.Client{}, repository.ErrNotFound)

		uc := NewLoginUsecase(repo, NewBcryptPasswordVerifier(), &stubIssuer{}, &fixedClock{now: now})

		_, err := uc.Execute(ctx, LoginInput{Email: "inconnu@example.com", Password: "motdepasse123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
