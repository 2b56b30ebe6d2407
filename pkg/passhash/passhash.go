// Package passhash genera y verifica hashes de claves de usuario.
//
// Formato actual: argon2id en notación PHC ($argon2id$v=19$...). Los
// archivos de usuarios heredados guardan un digest djb2 de 16 dígitos
// hex; esos hashes se siguen verificando pero nunca se generan, y se
// migran a argon2id en el siguiente cambio de clave.
package passhash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Parámetros argon2id (RFC 9106, perfil de memoria baja).
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

const argonPrefix = "$argon2id$"

// Hash genera un hash argon2id con sal aleatoria, en notación PHC.
func Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// Verify comprueba una clave contra el hash guardado. Acepta tanto el
// formato argon2id actual como el digest djb2 heredado. La comparación
// es de tiempo constante en ambos casos.
func Verify(password, stored string) bool {
	if strings.HasPrefix(stored, argonPrefix) {
		return verifyArgon(password, stored)
	}
	return verifyLegacy(password, stored)
}

// NeedsRehash indica si el hash guardado usa el formato heredado y debe
// regenerarse con la clave en claro disponible (cambio de clave).
func NeedsRehash(stored string) bool {
	return !strings.HasPrefix(stored, argonPrefix)
}

func verifyArgon(password, stored string) bool {
	// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
	parts := strings.Split(stored, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}
	var mem, iter uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iter, &par); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}
	got := argon2.IDKey([]byte(password), salt, iter, mem, par, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}

func verifyLegacy(password, stored string) bool {
	computed := LegacyDigest(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(stored)) == 1
}

// LegacyDigest calcula el digest djb2 heredado: hash = hash*33 + c
// partiendo de 5381, representado como 16 dígitos hex en minúscula.
// Solo existe para verificar archivos de usuarios antiguos.
func LegacyDigest(password string) string {
	var hash uint64 = 5381
	for i := 0; i < len(password); i++ {
		hash = hash*33 + uint64(password[i])
	}
	return fmt.Sprintf("%016x", hash)
}
