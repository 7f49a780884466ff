package constants

import "time"

// HTTP 서버 기본값 상수입니다.
const (
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultIdleTimeout  = 60 * time.Second

	// DefaultRequestTimeout 설정값이 없을 때 적용되는 요청 처리 타임아웃
	DefaultRequestTimeout = 60 * time.Second

	// DefaultShutdownTimeout 설정값이 없을 때 적용되는 종료 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultRateLimitPerSecond, DefaultRateLimitBurst 설정값이 없을 때 적용되는 IP별 요청 제한
	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 40
)
