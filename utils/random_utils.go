package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomToken 生成一个安全的随机令牌（32个十六进制字符）
func RandomToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic("generate random token failed")
	}
	return hex.EncodeToString(buf)
}
