package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileExt = "log"

	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	// setupOnce Setup()이 프로세스 생명주기 동안 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// globalCloser 최초 초기화 시 생성된 Closer이며, Setup 재호출 시 동일한 인스턴스를 반환합니다.
	globalCloser io.Closer

	// globalSetupErr 최초 초기화에서 발생한 에러이며, 재호출 시에도 그대로 반환합니다.
	globalSetupErr error
)

// Setup 전역 로깅 시스템을 초기화하고 옵션에 따라 파일/콘솔 출력을 구성합니다.
//
// main 함수 도입부에서 호출하고, 반환된 Closer는 defer로 해제해야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setupInternal(opts)
	})

	return globalCloser, globalSetupErr
}

func setupInternal(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 출력은 모두 hook이 담당하므로 기본 포맷터와 출력은 비활성화합니다.
	logrus.SetFormatter(&silentFormatter{})
	logrus.SetOutput(io.Discard)

	logDir := opts.Dir
	if logDir == "" {
		logDir = defaultDir
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	rotation := rotationPolicy{
		dir:        logDir,
		name:       opts.Name,
		maxSizeMB:  opts.MaxSizeMB,
		maxBackups: opts.MaxBackups,
		maxAge:     opts.MaxAge,
	}
	if rotation.maxSizeMB == 0 {
		rotation.maxSizeMB = defaultMaxSizeMB
	}
	if rotation.maxBackups == 0 {
		rotation.maxBackups = defaultMaxBackups
	}

	mainWriter := rotation.newWriter("")
	h := &hook{
		mainWriter: mainWriter,
		formatter:  newTextFormatter(opts.CallerPathPrefix),
	}
	closers := []io.Closer{mainWriter}

	if opts.EnableCriticalLog {
		w := rotation.newWriter("critical")
		h.criticalWriter = w
		closers = append(closers, w)
	}
	if opts.EnableVerboseLog {
		w := rotation.newWriter("verbose")
		h.verboseWriter = w
		closers = append(closers, w)
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = os.Stdout
	}

	logrus.AddHook(h)

	c := &closer{
		closers: closers,
		hook:    h,
	}

	// Fatal 로그로 os.Exit가 호출되기 직전에도 버퍼에 남은 로그가 기록되도록 합니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// rotationPolicy lumberjack 기반 로그 파일의 로테이션 정책입니다.
type rotationPolicy struct {
	dir  string
	name string

	maxSizeMB  int
	maxBackups int
	maxAge     int
}

// newWriter suffix에 해당하는 로그 파일의 Writer를 생성합니다.
// 파일은 첫 쓰기 시점에 lumberjack이 생성합니다.
//
//	""         -> <name>.log
//	"critical" -> <name>.critical.log
func (p rotationPolicy) newWriter(suffix string) *lumberjack.Logger {
	filename := fmt.Sprintf("%s.%s", p.name, fileExt)
	if suffix != "" {
		filename = fmt.Sprintf("%s.%s.%s", p.name, suffix, fileExt)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(p.dir, filename),
		MaxSize:    p.maxSizeMB,
		MaxBackups: p.maxBackups,
		MaxAge:     p.maxAge,
		Compress:   false,
		LocalTime:  true,
	}
}

// newTextFormatter 파일/콘솔 출력에 사용할 TextFormatter를 생성합니다.
func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return
		},
	}
}
