package constants

// 엔드포인트 경로 상수입니다.
const (
	PathVersion      = "/version"
	PathVersionBuild = "/version/build"
	PathHealth       = "/health"
	PathMetrics      = "/metrics"
	PathSwagger      = "/swagger/*"
)
