package constants

// 내부 로깅을 위한 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgHTTPServerFatalError    = "API 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다."

	// ------------------------------------------------------------------------------------------------
	// 요청 처리
	// ------------------------------------------------------------------------------------------------

	LogMsgHTTPRequest         = "HTTP 요청"
	LogMsgPanicRecovered      = "PANIC 복구됨"
	LogMsgRateLimitExceeded   = "요청 속도 제한 초과"
	LogMsgHTTPServerError     = "HTTP 요청 처리 중 서버 오류 발생"
	LogMsgHTTPClientError     = "HTTP 요청 처리 중 클라이언트 오류 발생"
	LogMsgErrorResponseFailed = "에러 응답 전송 실패"
)

// 핸들러 로깅 메시지 상수입니다.
const (
	LogMsgHealthCheck = "헬스체크 요청"
	LogMsgBuildInfo   = "빌드 정보 조회 요청"
)
