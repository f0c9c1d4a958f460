package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields(t *testing.T) {
	assert.Equal(t, logrus.Fields{"a": 1, badKey: "dangling"}, Fields([]any{"a", 1, "dangling"}))
	assert.Equal(t, logrus.Fields{"7": "seven"}, Fields([]any{7, "seven"}))
	assert.Empty(t, Fields(nil))
}

func TestDefault(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	Default().Warn("placeholder in use", "insecure", true)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "placeholder in use", entry.Message)
	assert.Equal(t, true, entry.Data["insecure"])
}
