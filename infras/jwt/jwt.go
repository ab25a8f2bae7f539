package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"strings"
	"time"

	"campground/config"
	"campground/shared/failure"

	jwtLib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwtLib.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type JWT interface {
	GenerateTokenPair(userID, email, role string) (*TokenPair, error)
	ValidateToken(tokenString string) (*Claims, error)
	RefreshTokens(refreshToken string) (*TokenPair, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type jwtImpl struct {
	config *config.Config
}

func New(config *config.Config) JWT {
	return &jwtImpl{config: config}
}

func (j *jwtImpl) accessExpiry() time.Duration {
	return time.Duration(j.config.JWT.AccessExpireMin) * time.Minute
}

func (j *jwtImpl) refreshExpiry() time.Duration {
	return time.Duration(j.config.JWT.RefreshExpireMin) * time.Minute
}

func (j *jwtImpl) GenerateTokenPair(userID, email, role string) (*TokenPair, error) {
	now := time.Now()

	accessClaims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwtLib.RegisteredClaims{
			ExpiresAt: jwtLib.NewNumericDate(now.Add(j.accessExpiry())),
			IssuedAt:  jwtLib.NewNumericDate(now),
			Issuer:    j.config.App.Name,
			Subject:   userID,
		},
	}

	accessToken := jwtLib.NewWithClaims(jwtLib.SigningMethodHS256, accessClaims)
	signedAccessToken, err := accessToken.SignedString([]byte(j.config.JWT.AccessSecret))
	if err != nil {
		return nil, errors.Wrap(err, "signing access token")
	}

	refreshClaims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwtLib.RegisteredClaims{
			ExpiresAt: jwtLib.NewNumericDate(now.Add(j.refreshExpiry())),
			IssuedAt:  jwtLib.NewNumericDate(now),
			Issuer:    j.config.App.Name,
			Subject:   userID,
		},
	}

	refreshToken := jwtLib.NewWithClaims(jwtLib.SigningMethodHS256, refreshClaims)
	signedRefreshToken, err := refreshToken.SignedString([]byte(j.config.JWT.RefreshSecret))
	if err != nil {
		return nil, errors.Wrap(err, "signing refresh token")
	}

	return &TokenPair{
		AccessToken:  signedAccessToken,
		RefreshToken: signedRefreshToken,
		ExpiresIn:    int64(j.accessExpiry().Seconds()),
	}, nil
}

func (j *jwtImpl) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwtLib.ParseWithClaims(tokenString, &Claims{}, func(token *jwtLib.Token) (any, error) {
		if _, ok := token.Method.(*jwtLib.SigningMethodHMAC); !ok {
			return nil, failure.Unauthorized("unexpected signing method")
		}

		return []byte(j.config.JWT.AccessSecret), nil
	})
	if err != nil {
		return nil, failure.Unauthorized("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, failure.Unauthorized("invalid token claims")
	}

	return claims, nil
}

func (j *jwtImpl) RefreshTokens(refreshToken string) (*TokenPair, error) {
	token, err := jwtLib.ParseWithClaims(refreshToken, &Claims{}, func(token *jwtLib.Token) (any, error) {
		if _, ok := token.Method.(*jwtLib.SigningMethodHMAC); !ok {
			return nil, failure.Unauthorized("unexpected signing method")
		}

		return []byte(j.config.JWT.RefreshSecret), nil
	})
	if err != nil {
		return nil, failure.Unauthorized("invalid or expired refresh token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, failure.Unauthorized("invalid refresh token claims")
	}

	return j.GenerateTokenPair(claims.UserID, claims.Email, claims.Role)
}

func (j *jwtImpl) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", failure.Unauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", failure.Unauthorized("invalid authorization header format")
	}

	return parts[1], nil
}
