// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mia-platform/polylog"
	"github.com/mia-platform/polylog/adapters/hclogadapter"
	"github.com/mia-platform/polylog/adapters/zapadapter"
	"github.com/mia-platform/polylog/internal/logger"
)

// buildProvider turns a validated declaration into a provider.
func buildProvider(config ProviderConfig, outputs Outputs) polylog.Provider {
	switch config.Type {
	case TypeSolo:
		return polylog.NewSoloProvider(buildLogger(config.Default, config.Name, outputs))
	case TypeMulti:
		provider := polylog.NewMultiProvider(buildLogger(config.Default, config.Name, outputs))
		for _, name := range sortedKeys(config.Loggers) {
			provider.Set(name, buildLogger(config.Loggers[name], name, outputs))
		}
		return provider
	case TypeNamed:
		return buildNamedProvider(config.Default, outputs)
	default:
		return polylog.NewSoloProvider(polylog.NewNullLogger())
	}
}

func buildLogger(config LoggerConfig, name string, outputs Outputs) polylog.Logger {
	writer := config.writer(outputs)
	if config.Backend == BackendZap {
		return zapadapter.New(newZapLogger(config, writer, name))
	}

	return logger.New(writer, config.hclogOptions(name))
}

func buildNamedProvider(config LoggerConfig, outputs Outputs) polylog.Provider {
	writer := config.writer(outputs)
	if config.Backend == BackendZap {
		return zapadapter.NewProvider(newZapLogger(config, writer, ""))
	}

	return hclogadapter.NewProvider(logger.NewHCLog(writer, config.hclogOptions("")))
}

func (l LoggerConfig) writer(outputs Outputs) io.Writer {
	switch l.Output {
	case OutputStdout:
		return outputs.Stdout
	case OutputDiscard:
		return io.Discard
	default:
		return outputs.Stderr
	}
}

func (l LoggerConfig) hclogOptions(name string) logger.Options {
	return logger.Options{
		Name:  name,
		Level: polylog.LevelFromString(l.Level),
		JSON:  l.Format != FormatText,
	}
}

// newZapLogger builds a zap logger using the production encoder settings
// with RFC3339 UTC timestamps.
func newZapLogger(config LoggerConfig, writer io.Writer, name string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}

	var encoder zapcore.Encoder
	if config.Format == FormatText {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	level := zapadapter.ConvertLevel(polylog.LevelFromString(config.Level))
	core := zapcore.NewCore(encoder, zapcore.AddSync(writer), level)
	log := zap.New(core)
	if name != "" {
		log = log.Named(name)
	}
	return log
}
