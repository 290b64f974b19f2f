package bufview

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailuresAreLogged(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)
	defer SetLogger(nil)

	_, err := Wrap([]byte{1, 2}).Skip(3)
	require.Error(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "skip", entry.Data["op"])
	assert.Equal(t, 2, entry.Data["size"])

	_, err = Wrap([]byte{1}).Chunks(0)
	require.Error(t, err)
	assert.Equal(t, "chunks", hook.LastEntry().Data["op"])
	assert.Len(t, hook.AllEntries(), 2)
}

func TestLongPrefixCandidateIsNotLogged(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)
	defer SetLogger(nil)

	assert.False(t, Wrap([]byte{1, 2, 3}).IsPrefixOf(Wrap([]byte{1, 2})))
	assert.Empty(t, hook.AllEntries())
}
