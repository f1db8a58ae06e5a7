package service

import (
	"context"
	"errors"
	"time"

	"github.com/deppfellow/fintrack/internal/config"
	"github.com/deppfellow/fintrack/internal/errs"
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
)

// TokenType is the token_type of every issued token.
const TokenType = "Bearer"

// AuthService issues HS256 access tokens. Nothing in the API requires
// one yet.
type AuthService struct {
	users  UserStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(cfg config.AuthConfig, users UserStore) (*AuthService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("auth secret key is required")
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = config.DefaultTokenTTL
	}

	return &AuthService{
		users:  users,
		secret: []byte(cfg.SecretKey),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// IssueToken signs a token whose subject is the principal.
func (s *AuthService) IssueToken(principal model.Authenticatable) (*model.Token, error) {
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   principal.Subject(),
		Issuer:    config.ServiceName,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &model.Token{
		AccessToken: signed,
		TokenType:   TokenType,
		ExpiresAt:   expiresAt.UTC(),
	}, nil
}

// Login checks username and password and issues a token. Unknown users
// and wrong passwords get the same 401.
func (s *AuthService) Login(ctx context.Context, req *model.TokenRequest) (*model.Token, error) {
	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewUnauthorizedError("Invalid username or password", true)
		}
		return nil, err
	}

	if !user.PasswordMatches(req.Password) {
		return nil, errs.NewUnauthorizedError("Invalid username or password", true)
	}

	return s.IssueToken(user)
}
