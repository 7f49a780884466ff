package middleware

import (
	"bytes"
	"os"
	"testing"

	applog "github.com/akashkickdrum/version-service/pkg/log"
)

// setupTestLogger 전역 로거 출력을 JSON 형식의 버퍼로 돌리고 테스트 종료 시 복원합니다.
func setupTestLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	prevLevel := applog.GetLevel()

	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(os.Stderr)
		applog.SetFormatter(&applog.TextFormatter{})
		applog.SetLevel(prevLevel)
	})

	return buf
}
