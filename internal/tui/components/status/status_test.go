package status

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_MessageClearsOnlyWhenCurrent(t *testing.T) {
	c := New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	require.NotNil(t, c.ShowSuccess("Selected Apple"))
	first := clearMessageMsg{timestamp: base}

	base = base.Add(time.Second)
	c.ShowError("catalog offline")

	c.Update(first)
	require.NotNil(t, c.Message(), "a stale clear must not remove the newer message")
	assert.Equal(t, "catalog offline", c.Message().Content)

	c.Update(clearMessageMsg{timestamp: base})
	assert.Nil(t, c.Message())
}

func TestStatus_View(t *testing.T) {
	c := New()
	assert.Equal(t, "", c.View(), "no width, nothing rendered")

	c.SetSize(60, 1)
	c.SetHint("tab focus • ctrl+c quit")
	c.ShowSuccess("Selected Apple")

	out := ansi.Strip(c.View())
	assert.Contains(t, out, "tab focus")
	assert.Contains(t, out, "Selected Apple")
}
