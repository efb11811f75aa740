package logger

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestLogrusLogger_ForwardsLevelsAndFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(log.TraceLevel)

	l := NewLogrusLogger(log.NewEntry(base)).WithField("function", "wait")

	l.Info("waiting for %d milliseconds", 500)
	require.Len(t, hook.Entries, 1)
	require.Equal(t, log.InfoLevel, hook.LastEntry().Level)
	require.Equal(t, "waiting for 500 milliseconds", hook.LastEntry().Message)
	require.Equal(t, "wait", hook.LastEntry().Data["function"])

	l.Error("error while processing: %s", "boom")
	require.Equal(t, log.ErrorLevel, hook.LastEntry().Level)

	l.Trace("t")
	l.Debug("d")
	l.Warn("w")
	require.Len(t, hook.Entries, 5)
}

func TestLogrusLogger_NilEntryUsesStandardLogger(t *testing.T) {
	l := NewLogrusLogger(nil)
	require.NotNil(t, l.Entry)
	require.Equal(t, log.StandardLogger(), l.Entry.Logger)
}

func TestNilLogger_ImplementsILogger(t *testing.T) {
	var l ILogger = &NilLogger{}
	l.Info("ignored %d", 1)
	l.Error("ignored")
}

func TestSetup_OnlyFirstCallApplies(t *testing.T) {
	Setup("debug")
	Setup("error")

	require.Equal(t, log.DebugLevel, log.GetLevel())
}
