// Package logger собирает zap-логгер процесса по настройкам из config.
package logger

import (
	"ToDoList/internal/config"

	"go.uber.org/zap"
)

// New создаёт SugaredLogger. В production логи отключены полностью,
// в остальных окружениях используется development-конфигурация zap
// с уровнем LOG_LEVEL и, при необходимости, дополнительным файлом LOG_FILE.
func New(cfg *config.Config) (*zap.SugaredLogger, error) {
	if cfg.IsProduction() {
		return zap.NewNop().Sugar(), nil
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = level
	if cfg.LogFile != "" {
		zcfg.OutputPaths = append(zcfg.OutputPaths, cfg.LogFile)
		zcfg.ErrorOutputPaths = append(zcfg.ErrorOutputPaths, cfg.LogFile)
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
