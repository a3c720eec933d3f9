package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Provider мастер салона. После получения не изменяется
type Provider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// User профиль текущего пользователя приложения
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// Credentials контекст авторизации пользователя.
// Передаётся явно в каждую сессию и каждый вызов API вместо глобального состояния
type Credentials struct {
	Token string
}

// HasToken возвращает true, если токен задан
func (c Credentials) HasToken() bool {
	return c.Token != ""
}

// OwnerKey необратимый ключ владельца для хранения рядом с записью вместо самого токена
func (c Credentials) OwnerKey() string {
	sum := sha256.Sum256([]byte(c.Token))
	return hex.EncodeToString(sum[:])
}
