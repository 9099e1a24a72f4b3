package logger

import (
	"testing"
)

func TestNewLogger(t *testing.T) {
	// Create a new logger without webhooks
	l := NewLogger("", "")
	if l == nil {
		t.Fatal("Expected logger to be created, got nil")
	}

	// Test that logger methods don't panic
	l.Info("Test info message", "TEST")
	l.Warn("Test warning message", "TEST")
	l.Debug("Test debug message", "TEST")
	l.System("Test system message", "TEST")
	l.Success("Test success message", "TEST")

	l.Close()
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelCritical, "CRITICAL"},
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelSuccess, "SUCCESS"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{LevelSystem, "SYSTEM"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLogLevelWebhookColor(t *testing.T) {
	if got := LevelError.WebhookColor(); got != 0xFF0000 {
		t.Errorf("LevelError.WebhookColor() = %#x, want 0xFF0000", got)
	}

	if got := LevelSuccess.WebhookColor(); got != 0x00FF00 {
		t.Errorf("LevelSuccess.WebhookColor() = %#x, want 0x00FF00", got)
	}
}

func TestGetReturnsSameInstance(t *testing.T) {
	l1 := Get()
	l2 := Get()

	if l1 != l2 {
		t.Error("Get() should always return the same logger instance")
	}
}
