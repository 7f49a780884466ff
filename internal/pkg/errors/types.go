package errors

//go:generate stringer -type=ErrorType

// ErrorType 에러를 성격별로 분류합니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러 (기본값)
	Unknown ErrorType = iota

	// Internal 애플리케이션 내부 로직 오류
	Internal

	// System 파일, 네트워크 등 실행 환경 오류
	System

	// InvalidInput 설정값 등 외부 입력의 유효성 검사 실패
	InvalidInput

	// NotFound 요청한 리소스 또는 파일이 존재하지 않음
	NotFound

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 일시적으로 사용할 수 없는 상태 (종료 중 등)
	Unavailable
)
