package httputil

import (
	"net/http"

	apperrors "github.com/akashkickdrum/version-service/internal/pkg/errors"
	"github.com/akashkickdrum/version-service/internal/service/api/constants"
	"github.com/akashkickdrum/version-service/internal/service/api/model/response"
	applog "github.com/akashkickdrum/version-service/pkg/log"
	"github.com/labstack/echo/v4"
)

// frameworkMessages Echo가 기본 문구(http.StatusText)로 생성한 에러를 대체할 메시지입니다.
var frameworkMessages = map[int]string{
	http.StatusBadRequest:            constants.ErrMsgBadRequest,
	http.StatusMethodNotAllowed:      constants.ErrMsgMethodNotAllowed,
	http.StatusRequestEntityTooLarge: constants.ErrMsgRequestEntityTooLarge,
	http.StatusTooManyRequests:       constants.ErrMsgTooManyRequests,
	http.StatusServiceUnavailable:    constants.ErrMsgServiceUnavailable,
}

// ErrorHandler Echo의 전역 에러 핸들러입니다.
//
// 모든 에러를 {"result_code": <status>, "message": "..."} 형식의 JSON으로 응답합니다.
// 5xx는 Error, 4xx는 Warn 레벨로 기록하며, 이미 응답이 전송된 경우에는 로그만 남깁니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	switch {
	case code >= http.StatusInternalServerError:
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTPServerError)
	case code >= http.StatusBadRequest:
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTPClientError)
	}

	if c.Response().Committed {
		return
	}

	var sendErr error
	if c.Request().Method == http.MethodHead {
		sendErr = c.NoContent(code)
	} else {
		sendErr = c.JSON(code, response.ErrorResponse{ResultCode: code, Message: message})
	}

	if sendErr != nil {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, applog.Fields{
			"status_code": code,
			"error":       sendErr,
		}).Error(constants.LogMsgErrorResponseFailed)
	}
}

// resolve 에러로부터 응답 상태 코드와 클라이언트에게 노출할 메시지를 결정합니다.
// HTTPError가 아닌 에러는 내부 정보 노출을 막기 위해 AppError 타입에 따른 일반 메시지로 응답합니다.
func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if !apperrors.As(err, &he) {
		return resolveAppError(err)
	}

	code := he.Code
	if code == http.StatusNotFound {
		return code, constants.ErrMsgNotFound
	}

	var message string
	switch m := he.Message.(type) {
	case response.ErrorResponse:
		message = m.Message
	case string:
		message = m
	}

	if message == "" || message == http.StatusText(code) {
		if msg, ok := frameworkMessages[code]; ok {
			return code, msg
		}
		if code >= http.StatusInternalServerError {
			return code, constants.ErrMsgInternalServer
		}
		if message == "" {
			message = http.StatusText(code)
		}
	}

	return code, message
}

// resolveAppError 에러 체인의 가장 안쪽 AppError 타입으로 상태 코드를 정합니다. AppError가 없으면 500입니다.
func resolveAppError(err error) (int, string) {
	switch apperrors.UnderlyingType(err) {
	case apperrors.InvalidInput:
		return http.StatusBadRequest, constants.ErrMsgBadRequest
	case apperrors.NotFound:
		return http.StatusNotFound, constants.ErrMsgNotFound
	case apperrors.Timeout, apperrors.Unavailable:
		return http.StatusServiceUnavailable, constants.ErrMsgServiceUnavailable
	default:
		return http.StatusInternalServerError, constants.ErrMsgInternalServer
	}
}
