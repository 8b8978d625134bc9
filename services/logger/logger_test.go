package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(fn func()) string {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	fn()
	return buf.String()
}

func TestLevelFiltering(t *testing.T) {
	l := NewDefaultLogger(ErrorLevel)

	out := capture(func() { l.Warn("cache miss") })
	assert.Empty(t, out)

	out = capture(func() { l.Error("query failed") })
	assert.Contains(t, out, "[ERROR] query failed")
}

func TestWarnLevel(t *testing.T) {
	l := NewDefaultLogger(WarnLevel)

	out := capture(func() { l.Warn("ghi cache thất bại") })
	assert.Contains(t, out, "[WARN] ghi cache thất bại")

	out = capture(func() { l.Info("bỏ qua") })
	assert.Empty(t, out)
}

func TestWithPrefix(t *testing.T) {
	l := NewDefaultLogger(InfoLevel).WithPrefix("booking")

	out := capture(func() { l.Info("đã tạo booking %d", 7) })
	assert.Contains(t, out, "[INFO] [booking] đã tạo booking 7")
}
