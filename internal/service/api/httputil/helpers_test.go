package httputil

import (
	"bytes"
	"io"
	"os"
	"testing"

	applog "github.com/akashkickdrum/version-service/pkg/log"
)

// setupTestLogger 전역 로거의 출력을 버퍼로 돌리고 테스트 종료 시 복원합니다.
func setupTestLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	prevLevel := applog.GetLevel()

	applog.SetOutput(buf)
	applog.SetFormatter(&applog.TextFormatter{DisableTimestamp: true, DisableColors: true})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(io.Writer(os.Stderr))
		applog.SetLevel(prevLevel)
	})

	return buf
}
