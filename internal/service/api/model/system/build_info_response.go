package system

// BuildInfoResponse 서버 빌드 정보 응답
type BuildInfoResponse struct {
	// 애플리케이션 버전
	Version string `json:"version" example:"v1.0.0"`
	// Git 커밋 해시
	Commit string `json:"commit" example:"f25b8bf"`
	// 빌드 시간(UTC, RFC3339)
	BuildDate string `json:"build_date" example:"2026-01-01T14:00:00Z"`
	// CI/CD 빌드 번호
	BuildNumber string `json:"build_number" example:"100"`
	// 컴파일러 버전
	GoVersion string `json:"go_version" example:"go1.24.0"`
	// 실행 환경
	OS   string `json:"os" example:"linux"`
	Arch string `json:"arch" example:"amd64"`
	// 빌드 시점 작업 트리 변경 여부
	DirtyBuild bool `json:"dirty_build" example:"false"`
}
