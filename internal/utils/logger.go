package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitLogger installs the global zap logger. Release mode gets JSON output,
// anything else the human friendly development encoder.
func InitLogger(ginMode string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if ginMode == gin.ReleaseMode {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// LogEvent writes a standardized line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	}
	zap.L().Info(message, append(base, fields...)...)
}

// LogError is LogEvent for failures.
func LogError(requestID, module, action string, err error, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
		zap.Error(err),
	}
	zap.L().Error(action+" failed", append(base, fields...)...)
}
