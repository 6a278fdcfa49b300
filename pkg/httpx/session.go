package httpx

import (
	"net/http"

	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie — имя cookie с id сессии покупателя.
const SessionCookie = "sid"

// SessionMiddleware:
// - читает cookie sid; пустое или не-UUID значение заменяется новым UUID
// - сессионная cookie (без Max-Age): живёт, пока открыт браузер
// - кладёт sid в контекст запроса
func SessionMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || !validSID(sid) {
			sid = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := ctxmeta.WithSessionID(c.Request.Context(), sid)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SessionID — sid текущего запроса (после SessionMiddleware).
func SessionID(c *gin.Context) string {
	sid, _ := ctxmeta.SessionIDFromContext(c.Request.Context())
	return sid
}

func validSID(v string) bool {
	if v == "" {
		return false
	}
	_, err := uuid.Parse(v)
	return err == nil
}
