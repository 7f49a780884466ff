package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/akashkickdrum/version-service/internal/pkg/errors"
	"github.com/akashkickdrum/version-service/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator JSON 태그명으로 필드를 보고하고 커스텀 규칙이 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateCORSOrigin 실제 검증은 validation.ValidateCORSOrigin에 위임합니다.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

// checkStruct 구조체를 태그 규칙에 따라 검증하고, 첫 번째 위반 항목을 사용자 친화적인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrapf(err, apperrors.InvalidInput, "%s 설정 검증 중 알 수 없는 오류가 발생했습니다", contextName)
	}

	fe := validationErrors[0]
	switch {
	case fe.StructField() == "ListenPort":
		return apperrors.Newf(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다: '%v'", fe.Value())
	case fe.Tag() == "required_if":
		return apperrors.Newf(apperrors.InvalidInput, "TLS 서버 활성화 시 %s 설정은 필수입니다", fe.Field())
	case fe.Tag() == "file":
		return apperrors.Newf(apperrors.NotFound, "지정된 파일(%s)을 찾을 수 없습니다: '%v'", fe.Field(), fe.Value())
	case fe.Tag() == "cors_origin":
		return apperrors.Newf(apperrors.InvalidInput, "CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value())
	case fe.StructField() == "AllowOrigins" && fe.Tag() == "min":
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	case fe.Tag() == "gt":
		return apperrors.Newf(apperrors.InvalidInput, "%s의 %s 값은 0보다 커야 합니다: '%v'", contextName, fe.Field(), fe.Value())
	default:
		return apperrors.Newf(apperrors.InvalidInput, "%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fe.Field(), fe.Tag())
	}
}
