package external

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathertext.app/internal/ports"
)

func TestTextProviderLoggingDecorator_BasicFunctionality(t *testing.T) {
	testProvider := &testTextProvider{name: "wttr", response: "London: ☀️ +20°C"}
	testLogger := &testLogger{}

	decorator := NewTextProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.GetWeatherText(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "London: ☀️ +20°C", result)

	require.Len(t, testLogger.entries, 2)

	requestLog := testLogger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather text request started", requestLog.message)
	assert.Equal(t, "wttr", requestLog.fields["provider"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := testLogger.entries[1]
	assert.Equal(t, "INFO", responseLog.level)
	assert.Equal(t, "Weather text request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, len("London: ☀️ +20°C"), responseLog.fields["bytes"])
	assert.Contains(t, responseLog.fields, "duration_ms")

	assert.Equal(t, "wttr", decorator.GetProviderName())
}

func TestTextProviderLoggingDecorator_ErrorHandling(t *testing.T) {
	expectedErr := errors.New("connection refused")
	testProvider := &testTextProvider{name: "wttr", err: expectedErr}
	testLogger := &testLogger{}

	decorator := NewTextProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.GetWeatherText(context.Background())

	assert.Equal(t, expectedErr, err)
	assert.Empty(t, result)

	require.Len(t, testLogger.entries, 2)
	errorLog := testLogger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Weather text request failed", errorLog.message)
	assert.Equal(t, "error", errorLog.fields["event"])
	assert.Equal(t, "connection refused", errorLog.fields["error"])
}

func TestTextProviderLoggingDecorator_DurationTracking(t *testing.T) {
	testProvider := &testTextProvider{name: "wttr", response: "ok", delay: 20 * time.Millisecond}
	testLogger := &testLogger{}

	decorator := NewTextProviderLoggingDecorator(testProvider, testLogger)

	_, err := decorator.GetWeatherText(context.Background())
	require.NoError(t, err)

	duration, ok := testLogger.entries[1].fields["duration_ms"].(int64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(20))
}

type testTextProvider struct {
	name     string
	response string
	err      error
	delay    time.Duration
	calls    int
}

func (p *testTextProvider) GetWeatherText(ctx context.Context) (string, error) {
	p.calls++
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func (p *testTextProvider) GetProviderName() string {
	return p.name
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}
