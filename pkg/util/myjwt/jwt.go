package myjwt

import (
	"TextAnalyzer/internal/config"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims 调用方身份放在标准的 sub 字段中
type CustomClaims struct {
	jwt.RegisteredClaims
}

func GenerateToken(conf config.JwtConfig, subject string) (string, error) {
	key := conf.Key
	if key == "" {
		return "", errors.New("jwt key is empty")
	}

	expireHours := conf.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}

	now := time.Now()
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    conf.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(key))
}

func ParseToken(conf config.JwtConfig, tokenString string) (*CustomClaims, error) {
	key := conf.Key
	if key == "" {
		return nil, errors.New("jwt key is empty")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if conf.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(conf.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(key), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
