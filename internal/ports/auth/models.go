package auth

import "strings"

// SessionCookie es el nombre de la cookie donde viaja el token de sesión.
const SessionCookie = "cc_session"

// Claims es la identidad del caller. Se pasa explícitamente a cada operación de dominio.
type Claims struct {
	UserID   string
	Username string
}

// Authenticated indica si hay un usuario logueado detrás de los claims.
func (c Claims) Authenticated() bool {
	return strings.TrimSpace(c.UserID) != ""
}
