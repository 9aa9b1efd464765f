package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleOwner is the role carried by restaurant owner tokens.
const RoleOwner = "OWNER"

// OwnerClaims are the JWT claims carried by an owner access token.
type OwnerClaims struct {
	Username     string `json:"username"`
	RestaurantID int    `json:"restaurant_id"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenIssuer implements ports.TokenIssuer with HMAC-signed JWTs.
type JWTTokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenIssuer creates an issuer signing with the given secret. Tokens
// expire after ttl.
func NewJWTTokenIssuer(secret string, ttl time.Duration) *JWTTokenIssuer {
	return &JWTTokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue mints a signed token for an authenticated owner.
func (i *JWTTokenIssuer) Issue(username string, restaurantID int) (string, error) {
	now := time.Now()
	claims := OwnerClaims{
		Username:     username,
		RestaurantID: restaurantID,
		Role:         RoleOwner,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse validates a token string and returns its claims.
func (i *JWTTokenIssuer) Parse(tokenString string) (*OwnerClaims, error) {
	claims := &OwnerClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}
