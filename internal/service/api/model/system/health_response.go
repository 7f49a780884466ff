package system

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 헬스체크 상태: healthy
	Status string `json:"status" example:"healthy"`
	// 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`
}
