package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type LoggerTestSuite struct {
	suite.Suite
	originalLogger *zap.Logger
	observedLogs   *observer.ObservedLogs
}

func (suite *LoggerTestSuite) SetupSuite() {
	suite.originalLogger = zap.L()
}

func (suite *LoggerTestSuite) TearDownSuite() {
	zap.ReplaceGlobals(suite.originalLogger)
}

func (suite *LoggerTestSuite) SetupTest() {
	core, logs := observer.New(zap.DebugLevel)
	suite.observedLogs = logs
	zap.ReplaceGlobals(zap.New(core))
}

func (suite *LoggerTestSuite) TearDownTest() {
	suite.observedLogs.TakeAll()
}

func (suite *LoggerTestSuite) TestGetLogLevelFromString() {
	testCases := []struct {
		name     string
		input    string
		expected zapcore.Level
	}{
		{"debug lowercase", "debug", zapcore.DebugLevel},
		{"info lowercase", "info", zapcore.InfoLevel},
		{"warn lowercase", "warn", zapcore.WarnLevel},
		{"error lowercase", "error", zapcore.ErrorLevel},
		{"fatal", "fatal", zapcore.FatalLevel},

		{"debug uppercase", "DEBUG", zapcore.DebugLevel},
		{"info mixed case", "Info", zapcore.InfoLevel},

		{"debug short", "dbg", zapcore.DebugLevel},
		{"error short", "err", zapcore.ErrorLevel},
		{"warning full", "warning", zapcore.WarnLevel},
		{"information full", "information", zapcore.InfoLevel},

		{"debug with spaces", "  debug  ", zapcore.DebugLevel},

		{"empty string", "", zapcore.InfoLevel},
		{"invalid level", "invalid", zapcore.InfoLevel},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			result := getLogLevelFromString(tc.input)
			assert.Equal(suite.T(), tc.expected, result,
				"getLogLevelFromString(%q) should return %v", tc.input, tc.expected)
		})
	}
}

func (suite *LoggerTestSuite) TestInit() {
	testCases := []struct {
		name   string
		config *Config
	}{
		{
			name:   "basic config",
			config: &Config{Level: "info", Env: "test", ServiceName: "test-service"},
		},
		{
			name:   "debug level",
			config: &Config{Level: "debug", Env: "development", ServiceName: "debug-service"},
		},
		{
			name:   "default service name",
			config: &Config{Level: "warn", Env: "production"},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			require.NotPanics(suite.T(), func() {
				Init(tc.config)
			}, "Init() should not panic")
			assert.NotNil(suite.T(), zap.L())
		})
	}
}

func (suite *LoggerTestSuite) TestLoggingFunctions() {
	testCases := []struct {
		name     string
		logFunc  func()
		expected zapcore.Level
		message  string
	}{
		{"LogDebug", func() { LogDebug("debug message") }, zapcore.DebugLevel, "debug message"},
		{"LogInfo", func() { LogInfo("info message") }, zapcore.InfoLevel, "info message"},
		{"LogWarn", func() { LogWarn("warn message") }, zapcore.WarnLevel, "warn message"},
		{"LogError", func() { LogError("error message") }, zapcore.ErrorLevel, "error message"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.observedLogs.TakeAll()
			tc.logFunc()

			logs := suite.observedLogs.All()
			require.Len(suite.T(), logs, 1)
			assert.Equal(suite.T(), tc.expected, logs[0].Level)
			assert.Equal(suite.T(), tc.message, logs[0].Message)
		})
	}
}

func (suite *LoggerTestSuite) TestFormattedLoggingFunctions() {
	testCases := []struct {
		name     string
		logFunc  func()
		expected string
	}{
		{"LogInfof with args", func() { LogInfof("user %s logged in", "ana") }, "user ana logged in"},
		{"LogInfof without args", func() { LogInfof("plain message") }, "plain message"},
		{"LogWarnf with args", func() { LogWarnf("retrying %d", 2) }, "retrying 2"},
		{"LogErrorf with args", func() { LogErrorf("failed: %v", "boom") }, "failed: boom"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.observedLogs.TakeAll()
			tc.logFunc()

			logs := suite.observedLogs.All()
			require.Len(suite.T(), logs, 1)
			assert.Equal(suite.T(), tc.expected, logs[0].Message)
		})
	}
}

func (suite *LoggerTestSuite) TestStructuredFields() {
	LogInfo("session committed", zap.Bool("has_user", true), zap.String("screen", "admin"))

	logs := suite.observedLogs.All()
	require.Len(suite.T(), logs, 1)

	fields := logs[0].ContextMap()
	assert.Equal(suite.T(), true, fields["has_user"])
	assert.Equal(suite.T(), "admin", fields["screen"])
}

func (suite *LoggerTestSuite) TestSync() {
	assert.NotPanics(suite.T(), func() { Sync() })
}

func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
