// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package logging

import (
	"context"
	"io"
	"math/rand"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// StructuredLogger is this codebase's Logger implementation, backed by
// a zap.Logger core. It keeps the Debug/Info/Warn/Error/Fatal/With
// surface and the sampling knob every caller already codes against;
// only the encoding and write path changed.
type StructuredLogger struct {
	mu           sync.Mutex
	level        Level
	atomicLevel  zap.AtomicLevel
	base         *zap.Logger
	fields       []Field
	samplingRate float64
}

// NewStructuredLogger creates a JSON logger writing to stdout at level.
func NewStructuredLogger(level Level) *StructuredLogger {
	return newStructuredLogger(level, "json", zapcore.AddSync(os.Stdout))
}

// NewStructuredLoggerWithOutput creates a JSON logger writing to output.
func NewStructuredLoggerWithOutput(level Level, output io.Writer) *StructuredLogger {
	return newStructuredLogger(level, "json", zapcore.AddSync(output))
}

// NewStructuredLoggerWithFormat creates a logger in either "json" or
// "console" format, writing to output.
func NewStructuredLoggerWithFormat(level Level, format string, output io.Writer) *StructuredLogger {
	return newStructuredLogger(level, format, zapcore.AddSync(output))
}

func newStructuredLogger(level Level, format string, ws zapcore.WriteSyncer) *StructuredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	var encoder zapcore.Encoder
	if format == "console" {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	atomicLevel := zap.NewAtomicLevelAt(zapLevel(level))
	core := zapcore.NewCore(encoder, ws, atomicLevel)

	return &StructuredLogger{
		level:        level,
		atomicLevel:  atomicLevel,
		base:         zap.New(core),
		samplingRate: 1.0,
	}
}

// Debug logs a debug message, subject to the sampling rate.
func (l *StructuredLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	if l.samplingRate < 1.0 && rand.Float64() > l.samplingRate {
		return
	}
	l.log(ctx, zapcore.DebugLevel, msg, fields...)
}

// Info logs an informational message.
func (l *StructuredLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, zapcore.InfoLevel, msg, fields...)
}

// Warn logs a warning message.
func (l *StructuredLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, zapcore.WarnLevel, msg, fields...)
}

// Error logs an error message.
func (l *StructuredLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, zapcore.ErrorLevel, msg, fields...)
}

// Fatal logs at error level then exits the process.
func (l *StructuredLogger) Fatal(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, zapcore.ErrorLevel, msg, fields...)
	os.Exit(1)
}

// With creates a child logger carrying fields on every subsequent call.
func (l *StructuredLogger) With(fields ...Field) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	newFields := make([]Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &StructuredLogger{
		level:        l.level,
		atomicLevel:  l.atomicLevel,
		base:         l.base,
		fields:       newFields,
		samplingRate: l.samplingRate,
	}
}

// SetLevel sets the minimum log level.
func (l *StructuredLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.atomicLevel.SetLevel(zapLevel(level))
}

// SetSamplingRate sets the sampling rate applied to Debug calls.
func (l *StructuredLogger) SetSamplingRate(rate float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rate < 0.0 {
		rate = 0.0
	}
	if rate > 1.0 {
		rate = 1.0
	}
	l.samplingRate = rate
}

// log merges context, persistent, and call-site fields and hands them
// to the zap core only if lvl clears the configured threshold.
func (l *StructuredLogger) log(ctx context.Context, lvl zapcore.Level, msg string, fields ...Field) {
	ce := l.base.Check(lvl, msg)
	if ce == nil {
		return
	}

	l.mu.Lock()
	persistent := l.fields
	l.mu.Unlock()

	all := make([]Field, 0, len(persistent)+len(fields)+5)
	all = append(all, extractContextFields(ctx)...)
	all = append(all, persistent...)
	all = append(all, fields...)

	zf := make([]zap.Field, len(all))
	for i, f := range all {
		zf[i] = zap.Any(f.Key, f.Value)
	}
	ce.Write(zf...)
}

// zapLevel maps this package's Level to zap's.
func zapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError, LevelFatal:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewNop returns a Logger that discards everything, used as the
// zero-value dependency for packages that accept a Logger but whose
// caller hasn't wired a real one (tests, and any embedder that doesn't
// care about this engine's log output).
func NewNop() Logger {
	return &StructuredLogger{
		level:        LevelError,
		atomicLevel:  zap.NewAtomicLevelAt(zapcore.FatalLevel + 1),
		base:         zap.NewNop(),
		samplingRate: 1.0,
	}
}
