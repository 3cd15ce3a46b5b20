package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const saltLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const saltLength = 5

// MakeSalt 生成一个短随机盐（5 个随机字母）。
func MakeSalt() string {
	// 拒绝采样：丢弃会引入取模偏差的字节，保证字母均匀分布
	const limit = 256 - 256%len(saltLetters)
	salt := make([]byte, 0, saltLength)
	var buf [1]byte
	for len(salt) < saltLength {
		if _, err := rand.Read(buf[:]); err != nil {
			// crypto/rand 在所有受支持平台上不会失败
			panic(err)
		}
		if int(buf[0]) >= limit {
			continue
		}
		salt = append(salt, saltLetters[int(buf[0])%len(saltLetters)])
	}
	return string(salt)
}

// MakePasswordHash 为给定用户名和明文密码生成存储格式的摘要：
// hex(sha256(username+password+salt)) + "," + salt。
func MakePasswordHash(username, password string) string {
	return passwordHashWithSalt(username, password, MakeSalt())
}

func passwordHashWithSalt(username, password, salt string) string {
	sum := sha256.Sum256([]byte(username + password + salt))
	return fmt.Sprintf("%s,%s", hex.EncodeToString(sum[:]), salt)
}

// CheckPassword 用存储值中的盐重新计算摘要并严格比对。
// 存储值格式不合法时视为不匹配。
func CheckPassword(username, password, stored string) bool {
	idx := strings.LastIndex(stored, ",")
	if idx < 0 {
		return false
	}
	salt := stored[idx+1:]
	if salt == "" {
		return false
	}

	recomputed := passwordHashWithSalt(username, password, salt)
	return subtle.ConstantTimeCompare([]byte(recomputed), []byte(stored)) == 1
}
