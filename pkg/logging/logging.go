package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var root = newRootLogger()

func newRootLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	l.SetLevel(logrus.InfoLevel)
	if os.Getenv("AGENTFS_DEBUG") != "" {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// NewLogger returns a logger scoped to one component of the tool. All
// operational output goes to stderr so stdout stays reserved for progress
// lines.
func NewLogger(component string) *logrus.Entry {
	return root.WithField("component", component)
}

// SetVerbose lowers the threshold to debug for every logger already handed
// out.
func SetVerbose() {
	root.SetLevel(logrus.DebugLevel)
}
