package service

import (
	"errors"
	"fmt"
	"time"

	"dashboard-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL 是未設定 TTL 時的 token 有效期
const DefaultTokenTTL = 24 * time.Hour

// Identity 是 token 內帶的使用者身分
type Identity struct {
	UserID         string     `json:"userId"`
	Email          string     `json:"email"`
	Role           model.Role `json:"role"`
	OrganizationID string     `json:"organizationId,omitempty"`
}

// Claims 定義 JWT 負載內容
type Claims struct {
	Identity
	jwt.RegisteredClaims
}

// TokenConfig 在建構時注入，執行期間不再讀環境變數
type TokenConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

var parseWithClaims = jwt.ParseWithClaims

// TokenService 簽發與驗證 HS256 access token，本身不保存任何狀態
type TokenService struct {
	cfg TokenConfig
	now func() time.Time
}

func NewTokenService(cfg TokenConfig) *TokenService {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTokenTTL
	}
	return &TokenService{cfg: cfg, now: time.Now}
}

// WithSecret 回傳綁定新 secret 的副本，舊 secret 簽的 token 會變成 ErrInvalidToken
func (s *TokenService) WithSecret(secret string) *TokenService {
	cp := *s
	cp.cfg.Secret = secret
	return &cp
}

// TTL 回傳 token 有效期
func (s *TokenService) TTL() time.Duration { return s.cfg.TTL }

// Issue 依身分簽發 token，回傳 token 與到期時間（秒精度）
func (s *TokenService) Issue(id Identity) (string, time.Time, error) {
	if s.cfg.Secret == "" {
		return "", time.Time{}, ErrConfiguration
	}

	now := s.now()
	exp := jwt.NewNumericDate(now.Add(s.cfg.TTL))
	claims := Claims{
		Identity: id,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: exp,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("Issue: %w", err)
	}
	return token, exp.Time, nil
}

// Verify 驗證簽章、演算法與到期時間。now >= exp 即視為過期
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	if s.cfg.Secret == "" {
		return nil, ErrConfiguration
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}

	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
