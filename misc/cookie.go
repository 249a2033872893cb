package misc

import (
	"net/http"
	"time"
)

// SetCookie with dur == 0 sets a cookie with no expiry at all; the stored
// session has no server-side lifetime either.
func SetCookie(w http.ResponseWriter, name, value string, secure bool, dur time.Duration) {
	cookie := &http.Cookie{
		Path:     "/",
		Name:     name,
		Value:    value,
		HttpOnly: true,
		Secure:   secure,
	}
	if dur > 0 {
		cookie.Expires = time.Now().Add(dur)
	} else if dur < 0 {
		cookie.MaxAge = -1
	}

	http.SetCookie(w, cookie)
}

func GetCookie(r *http.Request, name string) string {
	if c, err := r.Cookie(name); err != nil {
		return ""
	} else {
		return c.Value
	}
}

func DeleteCookie(w http.ResponseWriter, name string, secure bool) {
	SetCookie(w, name, "deleted", secure, -1)
}
