// Package token implementa los tokens bearer opacos de la API.
//
// El texto plano entregado al cliente tiene la forma "<id>|<secreto>", donde
// id es la clave de la fila en auth_tokens y secreto son 32 bytes aleatorios
// en hex. La base de datos guarda únicamente hex(sha256(secreto)), así una
// fuga de la tabla no expone tokens utilizables y borrar la fila revoca
// exactamente ese token.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

const secretBytes = 32

// NewSecret genera el secreto aleatorio de un token y su hash persistible.
func NewSecret() (secret, hash string, err error) {
	raw := make([]byte, secretBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generar secreto: %w", err)
	}
	secret = hex.EncodeToString(raw)
	return secret, Hash(secret), nil
}

// Plain compone el token en texto plano que recibe el cliente.
func Plain(id int64, secret string) string {
	return strconv.FormatInt(id, 10) + "|" + secret
}

// Split separa un token en texto plano en (id, secreto).
// Devuelve ok=false si el formato no es "<id>|<secreto>".
func Split(plain string) (id int64, secret string, ok bool) {
	idPart, secret, found := strings.Cut(plain, "|")
	if !found || secret == "" {
		return 0, "", false
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, "", false
	}
	return id, secret, true
}

// Hash devuelve hex(sha256(secreto)).
func Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Matches compara en tiempo constante el secreto presentado contra el hash guardado.
func Matches(secret, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(secret)), []byte(storedHash)) == 1
}
