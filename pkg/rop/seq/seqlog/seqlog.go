// Package seqlog adapts zap loggers into callbacks for seq.OnErr and seq.OnOk.
package seqlog

import (
	"go.uber.org/zap"
)

// Errors logs every error at error level.
func Errors(logger *zap.Logger, msg string, fields ...zap.Field) func(err error) {
	return func(err error) {
		logger.Error(msg, append(fields[:len(fields):len(fields)], zap.Error(err))...)
	}
}

// Values logs every value at debug level.
func Values[T any](logger *zap.Logger, msg string, fields ...zap.Field) func(r T) {
	return func(r T) {
		logger.Debug(msg, append(fields[:len(fields):len(fields)], zap.Any("value", r))...)
	}
}

// Counter logs failures with their running number. One Counter serves a
// single pass over a sequence.
type Counter struct {
	logger *zap.Logger
	msg    string
	count  int
}

func NewCounter(logger *zap.Logger, msg string) *Counter {
	return &Counter{logger: logger, msg: msg}
}

// OnErr is the callback to hand to seq.OnErr.
func (c *Counter) OnErr(err error) {
	c.count++
	c.logger.Warn(c.msg, zap.Int("failure", c.count), zap.Error(err))
}

func (c *Counter) Count() int {
	return c.count
}
