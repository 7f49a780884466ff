package config

import (
	"fmt"
	"slices"
	"time"

	apperrors "github.com/akashkickdrum/version-service/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 담는 최상위 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	HTTPServer HTTPServerConfig `json:"http_server"`
	CORS       CORSConfig       `json:"cors"`
	RateLimit  RateLimitConfig  `json:"rate_limit"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.HTTPServer.validate(v); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}
	return c.RateLimit.validate(v)
}

// VerifyRecommendations 서비스 운영에 권장되는 설정을 따르고 있는지 진단합니다.
// 설정 로드를 실패시키지는 않으며, 잠재적 위험 요소에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTPServer.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTPServer.ListenPort))
	}

	if !c.Debug && c.CORS.allowsAnyOrigin() {
		warnings = append(warnings, "운영 모드에서 모든 Origin(*)의 교차 출처 요청이 허용되어 있습니다. 필요한 도메인만 allow_origins에 지정하는 것을 권장합니다")
	}

	return warnings
}

// HTTPServerConfig 웹 서버의 포트, TLS, 타임아웃 설정
type HTTPServerConfig struct {
	ListenPort      int           `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer       bool          `json:"tls_server"`
	TLSCertFile     string        `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile      string        `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	RequestTimeout  time.Duration `json:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" validate:"gt=0"`
}

func (c *HTTPServerConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "웹 서버(http_server)")
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책 설정
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if c.allowsAnyOrigin() && len(c.AllowOrigins) > 1 {
		return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
	}
	return checkStruct(v, c, "CORS(cors)")
}

func (c *CORSConfig) allowsAnyOrigin() bool {
	return slices.Contains(c.AllowOrigins, "*")
}

// RateLimitConfig 클라이언트 IP별 요청 속도 제한 설정
type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" validate:"gt=0"`
	Burst             int `json:"burst" validate:"gt=0"`
}

func (c *RateLimitConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "요청 속도 제한(rate_limit)")
}
