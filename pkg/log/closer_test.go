package log

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingCloser struct {
	calls  int
	synced int
	err    error
}

func (c *countingCloser) Close() error {
	c.calls++
	return c.err
}

func (c *countingCloser) Sync() error {
	c.synced++
	return nil
}

func TestCloser_Close(t *testing.T) {
	t.Parallel()

	t.Run("모든 리소스를 닫고 Hook을 비활성화", func(t *testing.T) {
		t.Parallel()

		a, b := &countingCloser{}, &countingCloser{}
		h := &hook{}
		c := &closer{closers: []io.Closer{a, nil, b}, hook: h}

		assert.NoError(t, c.Close())
		assert.Equal(t, 1, a.calls)
		assert.Equal(t, 1, a.synced)
		assert.Equal(t, 1, b.calls)
		assert.True(t, h.closed)
	})

	t.Run("중복 호출은 무시", func(t *testing.T) {
		t.Parallel()

		a := &countingCloser{}
		c := &closer{closers: []io.Closer{a}}

		assert.NoError(t, c.Close())
		assert.NoError(t, c.Close())
		assert.Equal(t, 1, a.calls)
	})

	t.Run("일부 실패해도 나머지를 닫고 에러를 모아 반환", func(t *testing.T) {
		t.Parallel()

		errA, errB := errors.New("a"), errors.New("b")
		a, b, ok := &countingCloser{err: errA}, &countingCloser{err: errB}, &countingCloser{}
		c := &closer{closers: []io.Closer{a, ok, b}}

		err := c.Close()
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
		assert.Equal(t, 1, ok.calls)
	})
}
