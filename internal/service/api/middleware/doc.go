// Package middleware API 서버에 적용되는 Echo 미들웨어를 제공합니다.
//
//   - PanicRecovery: 핸들러 패닉 복구 및 스택 트레이스 로깅
//   - ServerHeader: Server 응답 헤더 고정
//   - HTTPLogger: 구조화된 접근 로그 (민감한 쿼리 파라미터 마스킹)
//   - Metrics: Prometheus 요청 수/지연 시간 수집
//   - RateLimit: 클라이언트 IP별 요청 속도 제한
//   - Logger: Echo 내부 로거를 애플리케이션 로거(logrus)로 연결하는 어댑터
//
// 사용 예시:
//
//	e := echo.New()
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.HTTPLogger())
//	e.Use(middleware.NewMetrics(registry, version.Get()).Middleware())
//	e.Use(middleware.RateLimit(20, 40))
package middleware
