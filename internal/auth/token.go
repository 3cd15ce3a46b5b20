package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// TokenSigner 持有进程级密钥，负责签发与校验会话令牌。
// 令牌不在服务端存储，每次请求重新计算校验。
type TokenSigner struct {
	secret []byte
}

// NewTokenSigner 用配置中的密钥构造签名器。
func NewTokenSigner(secret string) *TokenSigner {
	return &TokenSigner{secret: []byte(secret)}
}

// Sign 将身份字符串编码为 "identity|hmachex" 形式的令牌。
func (s *TokenSigner) Sign(identity string) string {
	return fmt.Sprintf("%s|%s", identity, s.digest(identity))
}

// Verify 校验令牌并返回其中的身份字符串。
// 令牌畸形或签名不匹配时返回 ("", false)，调用方按"未登录"处理。
func (s *TokenSigner) Verify(token string) (string, bool) {
	idx := strings.Index(token, "|")
	if idx < 0 {
		return "", false
	}

	identity := token[:idx]
	signature := token[idx+1:]
	if identity == "" || signature == "" {
		return "", false
	}

	if !hmac.Equal([]byte(s.digest(identity)), []byte(signature)) {
		return "", false
	}
	return identity, true
}

func (s *TokenSigner) digest(value string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}
