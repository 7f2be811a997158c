package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"nanofrontier/internal/middleware"
	"nanofrontier/internal/models"
	"nanofrontier/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

type OperatorStore interface {
	GetByEmail(email string) (*models.Operator, error)
	GetByRefreshToken(token string) (*models.Operator, error)
	UpdateRefresh(id int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, expiresAt time.Time) (*models.Operator, error)
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService — вход операторов дашборда: bcrypt-пароль, короткий
// access-JWT и ротируемый opaque refresh в БД.
type AuthService struct {
	Ops        OperatorStore
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewAuthService(ops OperatorStore, secret []byte, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{Ops: ops, Secret: secret, AccessTTL: accessTTL, RefreshTTL: refreshTTL}
}

func (s *AuthService) issueAccess(op *models.Operator) (string, error) {
	claims := &middleware.Claims{
		OperatorID: op.ID,
		RoleID:     op.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.AccessTTL)),
		},
	}
	return middleware.SignToken(claims, s.Secret)
}

func (s *AuthService) Login(email, password string) (*models.Operator, *TokenPair, error) {
	op, err := s.Ops.GetByEmail(strings.TrimSpace(email))
	if err != nil || op == nil {
		return nil, nil, ErrInvalidCredentials
	}
	hash := strings.TrimSpace(op.PasswordHash)
	if hash == "" {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	access, err := s.issueAccess(op)
	if err != nil {
		return nil, nil, err
	}

	// Refresh (opaque) -> хранится в БД
	refresh, err := utils.NewRefreshToken(32)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Ops.UpdateRefresh(op.ID, refresh, time.Now().Add(s.RefreshTTL)); err != nil {
		return nil, nil, err
	}

	return op, &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Refresh(oldToken string) (*TokenPair, error) {
	old := strings.TrimSpace(oldToken)
	op, err := s.Ops.GetByRefreshToken(old)
	if err != nil || op == nil || op.RefreshToken == nil || op.RefreshExpiresAt == nil || op.RefreshRevoked {
		return nil, ErrInvalidRefreshToken
	}
	if time.Now().After(*op.RefreshExpiresAt) {
		return nil, ErrInvalidRefreshToken
	}

	// rotate refresh
	newRT, err := utils.NewRefreshToken(32)
	if err != nil {
		return nil, err
	}
	rotated, err := s.Ops.RotateRefresh(old, newRT, time.Now().Add(s.RefreshTTL))
	if err != nil || rotated == nil {
		return nil, ErrInvalidRefreshToken
	}

	access, err := s.issueAccess(rotated)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: newRT}, nil
}
