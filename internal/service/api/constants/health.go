package constants

// HealthStatusHealthy 헬스체크 상태: 정상
const HealthStatusHealthy = "healthy"
