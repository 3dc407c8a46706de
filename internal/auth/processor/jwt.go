package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ops-dashboard/internal/store"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "ops-dashboard"

func (p *AuthProcessor) generateJWTToken(ctx context.Context, user store.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"name": user.FullName,
		"iss":  tokenIssuer,
		"aud":  tokenIssuer,
		"exp":  now.Add(p.authConfig.TokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.authConfig.JWTSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", ErrFailedLogin
	}

	return tokenString, nil
}

func (b *BaseClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return b.ExpirationTime, nil
}

func (b *BaseClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return b.IssuedAt, nil
}

func (b *BaseClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return b.NotBefore, nil
}

func (b *BaseClaims) GetIssuer() (string, error) {
	return b.Issuer, nil
}

func (b *BaseClaims) GetSubject() (string, error) {
	return b.Subject, nil
}

func (b *BaseClaims) GetAudience() (jwt.ClaimStrings, error) {
	return b.Audience, nil
}

func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error) {
	var baseClaims BaseClaims
	t, err := jwt.ParseWithClaims(token, &baseClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.authConfig.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Warn(ctx, "token expired")
			return BaseClaims{}, ErrExpiredToken
		}

		p.logger.Error(ctx, "failed to parse token", err)
		return BaseClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return BaseClaims{}, ErrInvalidJWTToken
	}

	claims, ok := t.Claims.(*BaseClaims)
	if !ok {
		return BaseClaims{}, ErrParseJWTToken
	}

	return *claims, nil
}
