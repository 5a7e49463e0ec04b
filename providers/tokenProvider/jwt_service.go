package tokenprovider

import (
	"fmt"
	"strconv"
	"time"

	"assetflow/models"
	"assetflow/providers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

type jwtService struct {
	jwtSecret          []byte
	refreshSecret      []byte
	tokenExpiry        time.Duration
	refreshTokenExpiry time.Duration
	now                func() time.Time
}

func NewJWTService(secret, refreshSecret string, tokenExpiry, refreshExpiry time.Duration) providers.TokenProvider {
	return &jwtService{
		jwtSecret:          []byte(secret),
		refreshSecret:      []byte(refreshSecret),
		tokenExpiry:        tokenExpiry,
		refreshTokenExpiry: refreshExpiry,
		now:                time.Now,
	}
}

func (j *jwtService) GenerateAccessToken(identity models.Identity) (string, error) {
	now := j.now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(identity.ID, 10),
		"role": string(identity.Role),
		"typ":  typeAccess,
		"jti":  uuid.NewString(),
		"exp":  now.Add(j.tokenExpiry).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.jwtSecret)
}

func (j *jwtService) GenerateRefreshToken(userID int64) (string, error) {
	now := j.now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"typ": typeRefresh,
		"jti": uuid.NewString(),
		"exp": now.Add(j.refreshTokenExpiry).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.refreshSecret)
}

func (j *jwtService) ParseAccessToken(tokenStr string) (providers.TokenClaims, error) {
	claims, err := j.parse(tokenStr, j.jwtSecret, typeAccess)
	if err != nil {
		return providers.TokenClaims{}, err
	}
	role, _ := claims["role"].(string)
	out, err := toTokenClaims(claims)
	if err != nil {
		return providers.TokenClaims{}, err
	}
	out.Role = models.Role(role)
	return out, nil
}

func (j *jwtService) ParseRefreshToken(tokenStr string) (providers.TokenClaims, error) {
	claims, err := j.parse(tokenStr, j.refreshSecret, typeRefresh)
	if err != nil {
		return providers.TokenClaims{}, err
	}
	return toTokenClaims(claims)
}

func (j *jwtService) parse(tokenStr string, secret []byte, typ string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(j.now))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != typ {
		return nil, errors.New("invalid token type")
	}
	return claims, nil
}

func toTokenClaims(claims jwt.MapClaims) (providers.TokenClaims, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return providers.TokenClaims{}, errors.New("invalid 'sub' claim")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return providers.TokenClaims{}, errors.Wrap(err, "invalid 'sub' claim")
	}
	jti, _ := claims["jti"].(string)
	var issuedAt time.Time
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		issuedAt = iat.Time
	}
	return providers.TokenClaims{ID: jti, UserID: userID, IssuedAt: issuedAt}, nil
}
