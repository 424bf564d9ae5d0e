package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"studyplan/entities"
)

// DevLogin resolves the session identity from a cookie, falling back to
// the guest sentinel when none is present.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie("STUDYPLAN_UID"); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: "STUDYPLAN_UID", Value: q, Path: "/"})
					uid = q
				} else {
					uid = entities.GuestUserID
					c.SetCookie(&http.Cookie{Name: "STUDYPLAN_UID", Value: uid, Path: "/"})
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
