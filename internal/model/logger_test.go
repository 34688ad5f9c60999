package model

import "testing"

func TestDiscardLoggerWorksAsIntended(t *testing.T) {
	logger := DiscardLogger
	logger.Debug("foo")
	logger.Debugf("%s", "foo")
	logger.Info("foo")
	logger.Infof("%s", "foo")
	logger.Warn("foo")
	logger.Warnf("%s", "foo")
}

type countingLogger struct {
	logDiscarder
	count int
}

func (cl *countingLogger) Debugf(format string, v ...interface{}) {
	cl.count++
}

func TestValidLoggerOrDefault(t *testing.T) {
	t.Run("with nil logger", func(t *testing.T) {
		if ValidLoggerOrDefault(nil) != DiscardLogger {
			t.Fatal("expected DiscardLogger")
		}
	})

	t.Run("with a valid logger", func(t *testing.T) {
		expected := &countingLogger{}
		got := ValidLoggerOrDefault(expected)
		got.Debugf("%d", 1)
		if expected.count != 1 {
			t.Fatal("expected to use the provided logger")
		}
	})
}
