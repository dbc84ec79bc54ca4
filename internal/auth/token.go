package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the access token handed out at login.
type Claims struct {
	UserID    uint   `json:"userId"`
	CompanyID uint   `json:"companyId"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Access token lifetime
const AccessTTL = 15 * time.Minute

func secret() []byte {
	if s := os.Getenv("AUTH_JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("dev-secret")
}

// GenerateAccessToken signs an HS256 token for the given login row.
func GenerateAccessToken(userID, companyID uint, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ParseAndValidate checks signature and expiry and returns the claims.
func ParseAndValidate(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, errors.New("invalid token")
	}
	return c, nil
}
