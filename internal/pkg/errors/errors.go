// Package errors 타입 기반 분류와 호출 스택을 지원하는 애플리케이션 에러를 제공합니다.
//
// 모든 에러는 ErrorType으로 분류되며 Wrap/Wrapf로 원인 에러에 컨텍스트를 덧붙일 수 있습니다.
// 표준 errors 패키지와 호환되므로 errors.Is, errors.As, errors.Unwrap을 그대로 사용할 수 있습니다.
//
//	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
//	    return errors.Wrap(err, errors.System, "설정 파일을 읽을 수 없습니다")
//	}
//
//	if errors.Is(err, errors.InvalidInput) {
//	    // 설정값 오류
//	}
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 분류(ErrorType), 메시지, 원인 에러, 생성 시점의 호출 스택을 담는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

func newAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		errType: errType,
		message: message,
		cause:   cause,
		stack:   captureStack(callerSkip),
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return newAppError(errType, message, nil)
}

// Newf 포맷 문자열로 메시지를 구성하여 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return newAppError(errType, fmt.Sprintf(format, args...), nil)
}

// Wrap 원인 에러를 감싸 새로운 에러를 생성합니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, message, err)
}

// Wrapf 포맷 문자열로 메시지를 구성하여 원인 에러를 감쌉니다. err이 nil이면 nil을 반환합니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, fmt.Sprintf(format, args...), err)
}

func (e *AppError) Type() ErrorType     { return e.errType }
func (e *AppError) Message() string     { return e.message }
func (e *AppError) Stack() []StackFrame { return e.stack }
func (e *AppError) Unwrap() error       { return e.cause }

func (e *AppError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.errType, e.message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
}

// Format %+v로 출력하면 에러 체인과 호출 스택을 함께 출력합니다.
//
// 스택은 체인의 가장 안쪽 AppError에서만 출력됩니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

		var inner *AppError
		if !errors.As(e.cause, &inner) {
			e.writeStack(s)
		}

		if e.cause != nil {
			io.WriteString(s, "\nCaused by:\n")
			if f, ok := e.cause.(fmt.Formatter); ok {
				f.Format(s, verb)
			} else {
				fmt.Fprintf(s, "\t%v", e.cause)
			}
		}
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		io.WriteString(s, e.Error())
	}
}

func (e *AppError) writeStack(w io.Writer) {
	if len(e.stack) == 0 {
		return
	}

	io.WriteString(w, "\nStack trace:")
	for _, f := range e.stack {
		fn := f.Function
		if i := strings.LastIndex(fn, "/"); i != -1 {
			fn = fn[i+1:]
		}
		fmt.Fprintf(w, "\n\t%s:%d %s", f.File, f.Line, fn)
	}
}

// Is 에러 체인에 지정한 ErrorType의 AppError가 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
	}
	return false
}

// As 표준 errors.As와 동일합니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 에러 체인의 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// UnderlyingType 에러 체인에서 가장 안쪽 AppError의 ErrorType을 반환합니다.
// 체인에 AppError가 없으면 Unknown입니다.
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
	}
	return t
}
