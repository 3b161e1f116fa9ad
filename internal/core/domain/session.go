package domain

// Session - сохраненная авторизация администратора.
type Session struct {
	Token string
	Email string
}

// IsZero - true, если сессии нет.
func (s *Session) IsZero() bool {
	return s == nil || s.Token == ""
}

// Ключи локального хранилища.
const (
	SessionKeyToken = "admin_token"
	SessionKeyEmail = "admin_email"
)
