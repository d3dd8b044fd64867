package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity the gateway stamps into every session token.
type Claims struct {
	UserID int
	Nombre string
	Email  string
	Rol    string
}

func GenerateToken(secret []byte, usuario *Usuario) (string, error) {
	if usuario == nil || usuario.ID == 0 {
		return "", errors.New("empty usuario passed to GenerateToken")
	}

	claims := jwt.MapClaims{
		"id":     usuario.ID,
		"nombre": usuario.Nombre,
		"email":  usuario.Email,
		"rol":    usuario.Rol,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, _ := mapClaims["id"].(float64)
	nombre, _ := mapClaims["nombre"].(string)
	email, _ := mapClaims["email"].(string)
	rol, _ := mapClaims["rol"].(string)

	return &Claims{UserID: int(id), Nombre: nombre, Email: email, Rol: rol}, nil
}
