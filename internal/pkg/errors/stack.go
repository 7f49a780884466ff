package errors

import (
	"path/filepath"
	"runtime"
)

const (
	// callerSkip runtime.Callers, captureStack, newAppError, 공개 생성 함수(New/Wrap 등)를 건너뛰어
	// 호출자의 위치가 첫 번째 프레임이 되도록 합니다.
	callerSkip = 4

	// maxStackDepth 에러마다 기록하는 최대 프레임 수
	maxStackDepth = 5
)

// StackFrame 에러가 생성된 호출 지점 하나를 나타냅니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

func captureStack(skip int) []StackFrame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]StackFrame, 0, n)
	for {
		f, more := frames.Next()
		stack = append(stack, StackFrame{File: filepath.Base(f.File), Line: f.Line, Function: f.Function})
		if !more {
			return stack
		}
	}
}
