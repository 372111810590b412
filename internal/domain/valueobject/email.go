package valueobject

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Email はメールアドレスを表す値オブジェクトです
type Email struct {
	value string
}

// NewEmail は文字列からEmailを生成します
func NewEmail(email string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" || len(normalized) > 254 {
		return Email{}, ErrInvalidEmail
	}
	if !emailRegex.MatchString(normalized) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: normalized}, nil
}

// String は文字列を返します
func (e Email) String() string {
	return e.value
}

// LocalPart はローカル部（@より前）を返します
func (e Email) LocalPart() string {
	return strings.Split(e.value, "@")[0]
}
