// Package logger provides structured logging for schismgen.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
)

func init() {
	logrus.SetFormatter(&textFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)
}

// Logger is responsible for logging messages from code.
type Logger interface {
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Error(string, ...interface{})
	WithFields(...interface{}) Logger
}

// New returns a new Logger instance for the given namespace.
func New(ns string, args ...interface{}) Logger {
	f := fields(args...)
	f["ns"] = ns
	return &logger{logrus.WithFields(f)}
}

type logger struct {
	log *logrus.Entry
}

// Debug logs a debug message.
//
// After the first argument, arguments are key-value pairs which are written
// as structured logs.
//
//	log.Debug("Some message here", "key1", value1, "key2", value2)
func (l *logger) Debug(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.log.WithFields(fields(args...)).Debug(msg)
}

// Info logs an info message.
func (l *logger) Info(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.log.WithFields(fields(args...)).Info(msg)
}

// Error logs an error message.
//
// Error has a two-argument version that can be used as a shortcut.
//
//	err := gen.Write(path)
//	log.Error("Couldn't write makefile", err)
func (l *logger) Error(msg string, args ...interface{}) {
	defer recoverLogErr()
	var f map[string]interface{}
	if len(args) == 1 {
		f = fields("error", args[0])
	} else {
		f = fields(args...)
	}
	l.log.WithFields(f).Error(msg)
}

// WithFields returns a new Logger instance with the given fields added to
// all log messages.
func (l *logger) WithFields(args ...interface{}) Logger {
	defer recoverLogErr()
	return &logger{l.log.WithFields(fields(args...))}
}

// SetLevel sets the level of logging.
func SetLevel(l string) {
	switch strings.ToLower(l) {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput sets the output for all loggers.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// Discard configures the logger to discard all logs.
func Discard() {
	logrus.SetOutput(io.Discard)
}

var rootLogger = New("schismgen")

// Debug logs to the global logger at the Debug level.
func Debug(msg string, args ...interface{}) {
	rootLogger.Debug(msg, args...)
}

// Info logs to the global logger at the Info level.
func Info(msg string, args ...interface{}) {
	rootLogger.Info(msg, args...)
}

// Error logs to the global logger at the Error level.
func Error(msg string, args ...interface{}) {
	rootLogger.Error(msg, args...)
}

// PrintSimpleError prints out an error message with a red "ERROR:" prefix.
func PrintSimpleError(err error) {
	fmt.Fprintf(os.Stderr, "%s %s\n", aurora.Red("ERROR:"), err.Error())
}

// recoverLogErr is used to recover from any panics during logging.
// Logging should never crash a program, so this failsafe tries to prevent
// those crashes.
func recoverLogErr() {
	if r := recover(); r != nil {
		fmt.Println("Recovered from logging panic", r)
	}
}

func fields(args ...interface{}) map[string]interface{} {
	f := make(map[string]interface{}, len(args)/2)
	if len(args) == 1 {
		f["unknown"] = args[0]
		return f
	}
	for i := 0; i+1 < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			k = fmt.Sprint(args[i])
		}
		f[k] = args[i+1]
	}
	if len(args)%2 != 0 && len(args) > 1 {
		f["unknown"] = args[len(args)-1]
	}
	return f
}
