// file: utils/jwt.go
package utils

import (
	"HackPort/models"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret = []byte("a-very-secure-secret-that-should-be-in-env")

// SetJWTSecret 启动时用配置覆盖默认密钥
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// Claims 同时承载管理员和队伍两种会话：
// AccountType 为 "admin" 时 AccountID 指向管理员，为 "team" 时指向队伍
type Claims struct {
	AccountID   uint32          `json:"account_id"`
	AccountType string          `json:"account_type"`
	Role        models.UserRole `json:"role,omitempty"`
	TeamCode    string          `json:"team_code,omitempty"`
	jwt.RegisteredClaims
}

func GenerateAdminToken(user models.User) (string, error) {
	claims := Claims{
		AccountID:   user.ID,
		AccountType: "admin",
		Role:        user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func GenerateTeamToken(team models.Team) (string, error) {
	claims := Claims{
		AccountID:   team.ID,
		AccountType: "team",
		TeamCode:    team.TeamCode,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, err
}
