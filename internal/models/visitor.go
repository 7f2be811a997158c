package models

import "time"

// Visitor — анонимная сессия посетителя. Логин не требуется:
// идентичность выдаётся при первом обращении и живёт до истечения токена.
type Visitor struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserAgent string    `json:"-"`
}

type VisitorSession struct {
	VisitorID string    `json:"visitor_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
