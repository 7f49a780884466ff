package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 로그를 여러 Writer로 분배하는 logrus Hook입니다.
//
// 라우팅 규칙:
//   - console : 모든 레벨
//   - critical: ERROR / FATAL / PANIC
//   - main    : INFO / WARN / ERROR / FATAL / PANIC
//   - verbose : DEBUG / TRACE (main에는 기록하지 않음)
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	// mu 로그 기록(RLock)과 종료 처리(Lock) 간의 동시성 제어
	mu     sync.RWMutex
	closed bool
}

// Levels 이 Hook이 수신할 로그 레벨을 반환합니다.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 로그 엔트리를 한 번 포맷팅한 뒤 레벨에 맞는 Writer들에 기록합니다.
// 하나의 Writer가 실패해도 나머지 Writer에는 기록을 시도하며, 처음 발생한 에러를 반환합니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	// 콘솔 출력 실패는 로깅 시스템 전체에 영향을 주지 않도록 에러로 전파하지 않습니다.
	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 콘솔 출력 실패: %v\n", err)
		}
	}

	var firstErr error
	keep := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	if entry.Level <= ErrorLevel && h.criticalWriter != nil {
		if _, err := h.criticalWriter.Write(msg); err != nil {
			keep(err)
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] Critical 로그 파일 쓰기 실패: %v\n", err)
		}
	}

	if entry.Level >= DebugLevel {
		if h.verboseWriter != nil {
			if _, err := h.verboseWriter.Write(msg); err != nil {
				keep(err)
				fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] Verbose 로그 파일 쓰기 실패: %v\n", err)
			}
		}

		return firstErr
	}

	if h.mainWriter != nil {
		if _, err := h.mainWriter.Write(msg); err != nil {
			keep(err)
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] Main 로그 파일 쓰기 실패: %v\n", err)
		}
	}

	return firstErr
}

// Close 이후의 모든 로그 기록 요청을 무시하도록 Hook을 닫습니다.
// 진행 중인 Fire 호출이 끝날 때까지 대기합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}
