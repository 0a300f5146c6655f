package utils

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
	mrand "math/rand"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// GenerateDeterministicID создает ID из инъецированного генератора.
// Один и тот же сид мира дает одни и те же ID сущностей:
// журнал решений остается сопоставимым между перезапусками.
func GenerateDeterministicID(rng *mrand.Rand, prefix string) string {
	b := make([]byte, 8)
	rng.Read(b)
	return prefix + hex.EncodeToString(b)
}

// StringToSeed сворачивает строку в зерно для math/rand
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
