package debug

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	t.Run("BasicLogging", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "TEST", FlagLevel|FlagPrefix)

		logger.Info("Hello %s", "World")

		output := buf.String()
		if !strings.Contains(output, "[INFO]") {
			t.Error("Missing log level")
		}
		if !strings.Contains(output, "[TEST]") {
			t.Error("Missing prefix")
		}
		if !strings.Contains(output, "Hello World") {
			t.Error("Missing message")
		}
	})

	t.Run("LogLevels", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagLevel)
		logger.SetLevel(LogLevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		output := buf.String()
		if strings.Contains(output, "debug message") {
			t.Error("Debug message should not be logged")
		}
		if strings.Contains(output, "info message") {
			t.Error("Info message should not be logged")
		}
		if !strings.Contains(output, "warn message") {
			t.Error("Warn message should be logged")
		}
		if !strings.Contains(output, "error message") {
			t.Error("Error message should be logged")
		}
	})

	t.Run("Off", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagLevel)
		logger.SetLevel(LogLevelOff)

		logger.Error("should not appear")

		if buf.Len() > 0 {
			t.Errorf("Expected no output at LogLevelOff, got %q", buf.String())
		}
	})

	t.Run("Enabled", func(t *testing.T) {
		logger := New(&bytes.Buffer{}, "", 0)
		logger.SetLevel(LogLevelWarn)
		if logger.Enabled(LogLevelInfo) || !logger.Enabled(LogLevelError) {
			t.Error("Expected only WARN and above to be enabled")
		}
		logger.SetLevel(LogLevelOff)
		if logger.Enabled(LogLevelFatal) {
			t.Error("Expected nothing to be enabled at LogLevelOff")
		}
	})

	t.Run("FileInfo", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagCaller|FlagLevel)

		logger.Info("test")

		output := buf.String()
		if !strings.Contains(output, "logger_test.go:") {
			t.Errorf("Missing file info in output: %s", output)
		}
	})

	t.Run("FatalPanics", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagLevel)

		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("Expected Fatal to panic")
			}
			if !strings.Contains(buf.String(), "[FATAL] bad bits 0x8000000") {
				t.Errorf("Expected fatal line to be written first, got %q", buf.String())
			}
		}()
		logger.Fatal("bad bits 0x%x", 0x8000000)
	})

	t.Run("SingleLine", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", 0)

		logger.Info("already terminated\n")
		logger.Info("bare")

		if got := buf.String(); got != "already terminated\nbare\n" {
			t.Errorf("Expected one line per message, got %q", got)
		}
	})

	t.Run("WriteErrors", func(t *testing.T) {
		logger := New(failingWriter{}, "", 0)
		logger.Warn("lost")
		logger.Warn("lost again")
		if got := logger.Dropped(); got != 2 {
			t.Errorf("Expected 2 dropped lines, got %d", got)
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := SetDefault(New(&buf, "app", FlagPrefix|FlagCaller))
	defer SetDefault(prev)

	SetLevel(LogLevelDebug)
	if !Enabled(LogLevelDebug) {
		t.Error("Expected DEBUG to be enabled on the new default")
	}
	Debug("loaded bank %s", "Init.bnk")

	output := buf.String()
	if !strings.HasPrefix(output, "[app] logger_test.go:") {
		t.Errorf("Expected the prefix and the calling file, got %q", output)
	}
	if !strings.Contains(output, "loaded bank Init.bnk") {
		t.Errorf("Missing message in %q", output)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "engine.log")
	logger, f, err := OpenFile(path, "akgo", FlagLevel)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	logger.Error("soundengine: init: %s", "NotInitialized")
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := string(data); got != "[ERROR] soundengine: init: NotInitialized\n" {
		t.Errorf("Expected the line in the file, got %q", got)
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevelFatal, "FATAL"},
		{LogLevelOff, "OFF"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel.String() = %v, want %v", got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{" Warn ", LogLevelWarn, false},
		{"warning", LogLevelWarn, false},
		{"", LogLevelInfo, false},
		{"off", LogLevelOff, false},
		{"loud", LogLevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func BenchmarkLogger(b *testing.B) {
	logger := New(bytes.NewBuffer(nil), "BENCH", DefaultFlags)

	b.Run("Enabled", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			logger.Info("Benchmark message %d", i)
		}
	})

	b.Run("BelowLevel", func(b *testing.B) {
		logger.SetLevel(LogLevelError)
		for i := 0; i < b.N; i++ {
			logger.Info("Benchmark message %d", i)
		}
	})
}
