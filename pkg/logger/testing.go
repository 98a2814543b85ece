package logger

import (
	"bytes"
	"sync"
)

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// Stub will restore the logger.Default after the test.
// The stubbed Default logs on every level.
func Stub(tb testingTB) *StubOutput {
	tb.Helper()
	var (
		ogOut   = Default.Out
		ogLevel = Default.Level
	)
	tb.Cleanup(func() {
		Default.Out = ogOut
		Default.Level = ogLevel
	})
	buf := &StubOutput{}
	Default.Out = buf
	Default.Level = LevelDebug
	return buf
}

// StubOutput is a concurrency safe in-memory log output.
type StubOutput struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (o *StubOutput) Write(p []byte) (int, error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Write(p)
}

func (o *StubOutput) String() string {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.String()
}

func (o *StubOutput) Bytes() []byte {
	o.m.Lock()
	defer o.m.Unlock()
	return append([]byte{}, o.buf.Bytes()...)
}
