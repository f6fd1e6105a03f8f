package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category loggers. Audit records accepted mutations, Security records
// authorization denials, Error records failures. They default to no-ops
// so code paths exercised in tests log nothing.
var (
	Audit    = zap.NewNop()
	Error    = zap.NewNop()
	Security = zap.NewNop()
)

func newLogger(filePath string, level zapcore.Level) (*zap.Logger, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(file),
		level,
	)
	return zap.New(core), nil
}

// Init switches the category loggers to JSON files under dir.
func Init(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	audit, err := newLogger(filepath.Join(dir, "audit.log"), zapcore.InfoLevel)
	if err != nil {
		return err
	}
	errLog, err := newLogger(filepath.Join(dir, "errors.log"), zapcore.ErrorLevel)
	if err != nil {
		return err
	}
	security, err := newLogger(filepath.Join(dir, "security.log"), zapcore.WarnLevel)
	if err != nil {
		return err
	}

	Audit = audit
	Error = errLog
	Security = security
	return nil
}

func Sync() {
	_ = Audit.Sync()
	_ = Error.Sync()
	_ = Security.Sync()
}
