package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"freelancehub_backend/internal/config"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims - полезная нагрузка bearer-токена.
// Токены выпускает внешний Identity Provider; мы только проверяем подпись
// общим секретом и извлекаем идентификатор пользователя и роль.
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken подписывает токен для пользователя.
// В проде этим занимается Identity Provider; функция нужна тестам и
// локальной разработке.
func GenerateToken(userID, role string) (string, error) {
	cfg := config.GetConfig()
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWT.TTL) * time.Minute)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken проверяет подпись и срок действия токена
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" {
		// Совместимость с токенами, где есть только стандартный sub
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
