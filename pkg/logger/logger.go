// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var LogContainer logContainer

type logContainer struct {
	m                sync.Mutex
	loggerInit       sync.Once
	simpleLoggerInit sync.Once

	file         string
	level        zapcore.Level
	logger       *zap.Logger
	simpleLogger *zap.SugaredLogger
}

// Configure sets where the file core writes and the minimum level. It has
// to be called before the first GetLogger/GetSimpleLogger to take effect.
func (l *logContainer) Configure(file string, level zapcore.Level) {
	l.m.Lock()
	defer l.m.Unlock()
	l.file = file
	l.level = level
}

// GetLogger returns the pointer to the logger and creates one if none exists
func (l *logContainer) GetLogger() *zap.Logger {
	l.loggerInit.Do(func() {
		l.logger = zap.New(l.getCombinedCore())
	})
	return l.logger
}

// GetSimpleLogger returns the pointer to the sugared logger and creates one
// if none exists
func (l *logContainer) GetSimpleLogger() *zap.SugaredLogger {
	l.simpleLoggerInit.Do(func() {
		l.simpleLogger = l.GetLogger().Sugar()
	})
	return l.simpleLogger
}

// String mirrors zap.String
func (l *logContainer) String(key string, val string) zap.Field {
	return zap.String(key, val)
}

// Int mirrors zap.Int
func (l *logContainer) Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

// Hex formats a register value the way the menus print it.
func (l *logContainer) Hex(key string, val uint32) zap.Field {
	return zap.String(key, fmt.Sprintf("0x%08X", val))
}

func getConsoleEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getJsonEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.EpochTimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

// The menu owns stdout, log lines go to stderr.
func (l *logContainer) getConsoleCore() zapcore.Core {
	return zapcore.NewCore(getConsoleEncoder(), zapcore.Lock(os.Stderr), l.level)
}

func (l *logContainer) getCombinedCore() zapcore.Core {
	l.m.Lock()
	defer l.m.Unlock()
	if l.file == "" {
		return l.getConsoleCore()
	}
	f, err := os.OpenFile(l.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to open logfile %s: %v\n", l.file, err)
		return l.getConsoleCore()
	}
	json := zapcore.NewCore(getJsonEncoder(), zapcore.AddSync(f), l.level)
	return zapcore.NewTee(l.getConsoleCore(), json)
}
