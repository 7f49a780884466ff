package middleware

import (
	"net/http"
	"runtime"

	"github.com/akashkickdrum/version-service/internal/service/api/constants"
	"github.com/akashkickdrum/version-service/internal/service/api/httputil"
	applog "github.com/akashkickdrum/version-service/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize 패닉 스택 트레이스를 담을 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 패닉을 복구하여 500 응답으로 변환하는 미들웨어를 반환합니다.
//
// 스택 트레이스와 Request ID를 함께 기록합니다. http.ErrAbortHandler는 의도된 중단이므로 다시 패닉을 발생시킵니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				stack := make([]byte, stackBufferSize)
				stack = stack[:runtime.Stack(stack, false)]

				fields := applog.Fields{
					"error":  newPanicError(r),
					"stack":  string(stack),
					"path":   c.Request().URL.Path,
					"method": c.Request().Method,
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error(constants.LogMsgPanicRecovered)

				returnErr = httputil.NewInternalServerError(constants.ErrMsgInternalServer)
			}()

			return next(c)
		}
	}
}
