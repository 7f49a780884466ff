package middleware

import "github.com/labstack/echo/v4"

// ServerHeader 모든 응답의 Server 헤더를 지정한 값으로 고정합니다. 빈 문자열이면 서버 정보를 노출하지 않습니다.
func ServerHeader(value string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, value)
			return next(c)
		}
	}
}
