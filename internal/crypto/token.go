package crypto

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "passgen"
	tokenAudience = "passgen-api"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// ProfileClaims are carried by profile bearer tokens.
type ProfileClaims struct {
	jwt.RegisteredClaims
	ProfileID int64  `json:"profile_id"`
	Name      string `json:"name"`
}

// IssueToken signs an HS256 token for the given profile.
func IssueToken(profileID int64, name, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := ProfileClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(profileID, 10),
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		ProfileID: profileID,
		Name:      name,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates signature, issuer, audience and expiry.
func ParseToken(raw, secret string) (*ProfileClaims, error) {
	claims := &ProfileClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid || claims.ProfileID <= 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
