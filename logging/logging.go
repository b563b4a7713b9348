// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers handed to the library components
// through their WithLogger options.
package logging

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrUnknownFormat indicates a format other than json or console.
var ErrUnknownFormat = errors.New("logging: unknown format")

// New returns a logger at level ("debug", "info", ...). The json format uses
// the zap production encoder, console the development one. Both write to
// stderr.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "logging: level %q", level)
	}

	var cfg zap.Config
	switch strings.ToLower(format) {
	case FormatJSON, "":
		cfg = zap.NewProductionConfig()
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
