package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nanofrontier/internal/middleware"
	"nanofrontier/internal/models"
	"nanofrontier/internal/utils"
)

type VisitorStore interface {
	Create(v *models.Visitor) error
	GetByID(id string) (*models.Visitor, error)
}

// IdentityService выдаёт анонимную идентичность без регистрации.
type IdentityService struct {
	Store  VisitorStore
	Secret []byte
	TTL    time.Duration
}

func NewIdentityService(store VisitorStore, secret []byte, ttl time.Duration) *IdentityService {
	return &IdentityService{Store: store, Secret: secret, TTL: ttl}
}

// EnsureIdentity идемпотентна: действующий токен возвращается как есть,
// без побочных эффектов. Невалидный, просроченный или отозванный
// (строка сессии удалена) токен приводит к выдаче новой идентичности.
func (s *IdentityService) EnsureIdentity(presentedToken, userAgent string) (*models.VisitorSession, error) {
	if presentedToken != "" {
		claims, err := middleware.ParseToken(presentedToken, s.Secret)
		if err == nil && claims.VisitorID != "" {
			v, lookupErr := s.Store.GetByID(claims.VisitorID)
			if lookupErr != nil {
				return nil, fmt.Errorf("identity lookup: %w", lookupErr)
			}
			if v != nil {
				return &models.VisitorSession{
					VisitorID: claims.VisitorID,
					Token:     presentedToken,
					ExpiresAt: claims.ExpiresAt.Time,
				}, nil
			}
		}
	}

	id, err := utils.NewVisitorID()
	if err != nil {
		return nil, fmt.Errorf("generate visitor id: %w", err)
	}
	visitor := &models.Visitor{ID: id, UserAgent: userAgent}
	if err := s.Store.Create(visitor); err != nil {
		return nil, fmt.Errorf("provision identity: %w", err)
	}

	expiresAt := time.Now().Add(s.TTL)
	claims := &middleware.Claims{
		VisitorID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := middleware.SignToken(claims, s.Secret)
	if err != nil {
		return nil, fmt.Errorf("sign visitor token: %w", err)
	}

	return &models.VisitorSession{VisitorID: id, Token: token, ExpiresAt: expiresAt}, nil
}
