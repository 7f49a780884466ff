// Package log 애플리케이션 전역에서 사용하는 구조화 로깅 기능을 제공합니다.
//
// 내부적으로 logrus를 사용하며, 호출 측에서는 이 패키지의 별칭 타입과 헬퍼만 사용하도록 하여
// 로깅 라이브러리에 대한 직접 의존을 한 곳으로 모읍니다.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// componentKey 로그의 발생 위치를 식별하는 필드 키입니다.
const componentKey = "component"

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
// 전달된 fields 맵은 변경하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields[componentKey] = component

	return logrus.WithFields(newFields)
}

// WithFields 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// SetDebugMode Debug 모드에 따라 로그 레벨을 설정합니다.
//   - Debug 모드: Trace 레벨 (모든 로그 출력)
//   - 운영 모드: Info 레벨
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// SetLevel 전역 로거의 레벨을 설정합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// GetLevel 전역 로거의 현재 레벨을 반환합니다.
func GetLevel() Level {
	return logrus.GetLevel()
}

// SetOutput 전역 로거의 출력 대상을 설정합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 전역 로거의 포맷터를 설정합니다.
func SetFormatter(formatter Formatter) {
	logrus.SetFormatter(formatter)
}

// StandardLogger 전역 logrus 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}
