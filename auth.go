package main

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	jwtSecret []byte // loaded from env JWT_SECRET (fallback to dev default)
	pinHash   []byte // bcrypt hash of the operator PIN
)

// initAuth hashes the operator PIN and loads the JWT signing secret.
func initAuth() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}
	jwtSecret = []byte(secret)

	pin := os.Getenv("OPERATOR_PIN")
	if pin == "" {
		pin = "0000" // development fallback
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("hash operator pin: %v", err))
	}
	pinHash = h
}

// VerifyPIN checks a typed PIN against the configured operator PIN.
func VerifyPIN(pin string) error {
	if err := bcrypt.CompareHashAndPassword(pinHash, []byte(pin)); err != nil {
		return fmt.Errorf("invalid pin")
	}
	return nil
}

// issueSessionToken signs a JWT carrying the session id.
func issueSessionToken(sid string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(jwtSecret)
}

// parseSessionToken validates the token and returns the session id claim.
func parseSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid claims")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", fmt.Errorf("missing session id")
	}
	return sid, nil
}
