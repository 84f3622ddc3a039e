package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeAccess marca los tokens de acceso. Un token con otro type no pasa Parse.
const TokenTypeAccess = "access_token"

// Claims incluye los claims estándar JWT más el tipo de token.
// Subject lleva el email del usuario (identificador único de login).
type Claims struct {
	jwt.RegisteredClaims
	Type string `json:"type"`
}

// Generate genera un access token firmado con el algoritmo configurado (familia HMAC).
// El subject es el email del usuario; exp = now + expMinutes.
func Generate(secret, algorithm, subject string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return "", fmt.Errorf("jwt: algoritmo desconocido %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return "", fmt.Errorf("jwt: algoritmo no soportado %q (solo HMAC)", algorithm)
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Type: TokenTypeAccess,
	}
	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el subject (email).
// Retorna error si el token es inválido, expirado, con firma incorrecta,
// sin subject o con un type distinto de access_token. No se valida audiencia.
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	if claims.Type != TokenTypeAccess {
		return "", fmt.Errorf("tipo de token inesperado %q", claims.Type)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token sin subject")
	}
	return claims.Subject, nil
}
