package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 以指定 cost 產生 bcrypt 哈希
func HashPassword(password string, cost int) (string, error) {
	b, err := bcryptGenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt (cost %d): %w", cost, err)
	}
	return string(b), nil
}

// ComparePassword 比對成功回傳 nil
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// IsHash 回報 s 是否已是可解析的 bcrypt 哈希。seed 檔的密碼可以是明文或哈希。
func IsHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
