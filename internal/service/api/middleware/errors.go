package middleware

import (
	apperrors "github.com/akashkickdrum/version-service/internal/pkg/errors"
	"github.com/akashkickdrum/version-service/internal/service/api/constants"
	"github.com/akashkickdrum/version-service/internal/service/api/httputil"
)

// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환하는 429 에러입니다.
var ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

// newPanicError error가 아닌 패닉 값을 Internal 타입의 에러로 변환합니다.
func newPanicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return apperrors.Newf(apperrors.Internal, "%v", r)
}
