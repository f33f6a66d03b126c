package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

// handlerがJSONにして返す
type LoginOutput struct {
	Client      model.Client `json:"client"`
	AccessToken string       `json:"access_token"`
	ExpiresIn   int          `json:"expires_in"`
}

// メールまたはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(clientID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type LoginUsecase struct {
	clientRepo repository.ClientRepository
	verifier   PasswordVerifier
	issuer     AccessTokenIssuer
	clock      Clock
}

func NewLoginUsecase(
	clientRepo repository.ClientRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		clientRepo: clientRepo,
		verifier:   verifier,
		issuer:     issuer,
		clock:      clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	//emailでクライアント取得
	client, err := u.clientRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if errors.Is(err, repository.ErrNotFound) {
		// 存在有無を区別できるメッセージは返さない
		return out, ErrInvalidCredentials
	}
	if err != nil {
		return out, err
	}

	//パスワード検証
	if client.PasswordHash == "" || !u.verifier.Verify(in.Password, client.PasswordHash) {
		return out, ErrInvalidCredentials
	}

	//アクセストークン発行
	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(client.ID, client.Role, now)
	if err != nil {
		return out, err
	}

	client.PasswordHash = ""

	out.Client = client
	out.AccessToken = token
	out.ExpiresIn = int(expiresAt.Sub(now).Seconds())
	return out, nil
}
