package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims покрывает оба вида токенов: анонимный посетитель (VisitorID)
// и оператор дашборда (OperatorID + RoleID).
type Claims struct {
	VisitorID  string `json:"visitor_id,omitempty"`
	OperatorID int    `json:"operator_id,omitempty"`
	RoleID     int    `json:"role_id,omitempty"`
	jwt.RegisteredClaims
}

// список публичных эндпоинтов, которые не требуют токена
func isPublicPath(method, path string) bool {
	switch path {
	case "/session/anonymous", "/login", "/refresh":
		return true
	}
	// каталог предложений и калькулятор — публичные, только чтение
	if method == http.MethodGet && strings.HasPrefix(path, "/offerings") {
		return true
	}
	if strings.HasPrefix(path, "/swagger") ||
		strings.HasPrefix(path, "/healthz") {
		return true
	}
	return false
}

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1) пропускаем preflight
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		// 2) пропускаем публичные пути
		if isPublicPath(c.Request.Method, c.Request.URL.Path) {
			c.Next()
			return
		}

		// 3) читаем Authorization
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimSpace(parts[1])
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		// 4) парсим и валидируем токен
		claims, err := ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// 5) прокидываем идентичность в контекст
		if claims.VisitorID != "" {
			c.Set("visitor_id", claims.VisitorID)
		}
		if claims.OperatorID != 0 {
			c.Set("operator_id", claims.OperatorID)
			c.Set("role_id", claims.RoleID)
		}

		c.Next()
	}
}

// ParseToken проверяет подпись HMAC и срок действия (с небольшим leeway).
func ParseToken(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		// защита: принимаем только HMAC (HS256 и т.п.)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	const leeway = 2 * time.Minute
	now := time.Now().Add(-leeway)
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return nil, jwt.ErrTokenExpired
	}
	return claims, nil
}

// SignToken выпускает HS256-токен с данными claims.
func SignToken(claims *Claims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
