package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 会員登録の入力
type RegisterClientInput struct {
	Nom       string
	Prenom    string
	Email     string
	Password  string
	Telephone string
	Adresse   string
}

// 会員登録の出力
type RegisterClientOutput struct {
	Client model.Client
}

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrNomRequired        = errors.New("nom required")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// RegisterClientUsecaseは会員登録の処理。
type RegisterClientUsecase struct {
	clientRepo repository.ClientRepository
	hasher     PasswordHasher
}

// DI
func NewRegisterClientUsecase(clientRepo repository.ClientRepository, hasher PasswordHasher) *RegisterClientUsecase {
	return &RegisterClientUsecase{
		clientRepo: clientRepo,
		hasher:     hasher,
	}
}

// 会員登録実行
func (u *RegisterClientUsecase) Execute(ctx context.Context, in RegisterClientInput) (RegisterClientOutput, error) {
	var out RegisterClientOutput

	if strings.TrimSpace(in.Nom) == "" {
		return out, ErrNomRequired
	}

	// emailの形式チェック
	if !isValidEmailFormat(in.Email) {
		return out, ErrInvalidEmailFormat
	}

	// passwordの長さチェック（最小8文字）
	if len(in.Password) < 8 {
		return out, ErrPasswordTooShort
	}

	// email重複チェック
	_, err := u.clientRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err == nil {
		return out, ErrEmailAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return out, err
	}

	// パスワードをハッシュ化（平文は保存しない）
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	client := model.Client{
		Nom:          strings.TrimSpace(in.Nom),
		Prenom:       strings.TrimSpace(in.Prenom),
		Email:        strings.TrimSpace(in.Email),
		Telephone:    strings.TrimSpace(in.Telephone),
		Adresse:      strings.TrimSpace(in.Adresse),
		PasswordHash: hashed,
		Role:         model.RoleClient, // 初期はCLIENT
	}

	if err := u.clientRepo.Create(ctx, &client); err != nil {
		return out, err
	}

	// 返すときはハッシュを空にして漏洩防止
	client.PasswordHash = ""
	out.Client = client
	return out, nil
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
