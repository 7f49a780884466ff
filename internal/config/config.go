// Package config 애플리케이션 설정을 기본값, JSON 설정 파일, 환경 변수 순으로 계층화하여 로드합니다.
package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/akashkickdrum/version-service/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/iancoleman/strcase"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName = "version-service"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 탐색하는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정값을 덮어쓰는 환경 변수의 접두사입니다.
	// 계층은 이중 언더스코어(__)로 구분합니다. 예: VERSION_SERVICE_HTTP_SERVER__LISTEN_PORT=9090
	EnvPrefix = "VERSION_SERVICE_"

	envNestingSeparator = "__"
	keyDelimiter        = "."
)

// 설정 기본값
const (
	DefaultListenPort        = 8080
	DefaultRequestTimeout    = 60 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultRequestsPerSecond = 20
	DefaultBurst             = 40
)

// newDefaultConfig 설정 파일과 환경 변수가 모두 비어 있을 때 사용되는 기본 설정을 생성합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		HTTPServer: HTTPServerConfig{
			ListenPort:      DefaultListenPort,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: DefaultRequestsPerSecond,
			Burst:             DefaultBurst,
		},
	}
}

// Load 기본 설정 파일(DefaultFilename)을 읽어 설정을 로드합니다.
//
// 기본 설정 파일이 없으면 기본값과 환경 변수만으로 설정을 구성합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, false)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 설정을 로드합니다. 파일이 없으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, true)
}

func load(filename string, fileRequired bool) (*AppConfig, error) {
	k := koanf.New(keyDelimiter)

	// 1. 기본값
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && fileRequired:
			return nil, apperrors.Wrapf(err, apperrors.NotFound, "설정 파일을 찾을 수 없습니다: '%s'", filename)
		case errors.Is(err, fs.ErrNotExist):
			// 기본 설정 파일은 선택 사항
		default:
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일 로드 중 오류가 발생했습니다: '%s'", filename)
		}
	}

	// 3. 환경 변수 (최우선)
	if err := k.Load(env.Provider(EnvPrefix, keyDelimiter, normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true, // 구조체에 정의되지 않은 설정 키는 오타로 간주
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정('%s')의 유효성 검증에 실패했습니다", filename)
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
//
//	VERSION_SERVICE_HTTP_SERVER__LISTEN_PORT -> http_server.listen_port
func normalizeEnvKey(s string) string {
	segments := strings.Split(strings.TrimPrefix(s, EnvPrefix), envNestingSeparator)
	for i, seg := range segments {
		segments[i] = strcase.ToSnake(seg)
	}
	return strings.Join(segments, keyDelimiter)
}
