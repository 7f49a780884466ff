package log

import (
	"os"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

// resetGlobalState Setup()의 sync.Once와 logrus 전역 상태를 초기화합니다.
// 전역 상태를 변경하므로 이를 사용하는 테스트는 병렬로 실행할 수 없습니다.
func resetGlobalState(t *testing.T) {
	t.Helper()

	restore := func() {
		setupOnce = sync.Once{}
		globalCloser = nil
		globalSetupErr = nil

		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetReportCaller(false)
	}

	restore()
	t.Cleanup(restore)
}
