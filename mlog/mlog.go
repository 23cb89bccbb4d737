// Package mlog is the structured logger shared by the build and query
// pipelines. It wraps logrus so progress narration (phrase counts, triple
// counts, sample counts, MEM and record counts) is queryable rather than
// free text.
package mlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

var base = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetVerbose raises the log level to Debug, used by -v on the CLI.
func SetVerbose(v bool) {
	if v {
		base.SetLevel(logrus.DebugLevel)
	} else {
		base.SetLevel(logrus.InfoLevel)
	}
}

// With returns an entry scoped to a component, e.g. mlog.With("pfp").
func With(component string) *logrus.Entry {
	return base.WithField("component", component)
}
