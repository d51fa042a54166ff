package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 24 * time.Hour

func getJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// GenerateToken issues a signed bearer token for a session.
func GenerateToken(session Session) (string, error) {
	if session.UserID == "" {
		return "", errors.New("empty userID passed to GenerateToken")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"userID": session.UserID,
		"email":  session.Email,
		"role":   session.Role,
		"exp":    time.Now().Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses a bearer token back into its session.
func ValidateToken(tokenString string) (Session, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return Session{}, err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, errors.New("invalid token claims")
	}

	session := Session{}
	session.UserID, _ = claims["userID"].(string)
	session.Email, _ = claims["email"].(string)
	session.Role, _ = claims["role"].(string)

	return session, nil
}
