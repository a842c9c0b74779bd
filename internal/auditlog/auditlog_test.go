package auditlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	first := Entry{
		Timestamp: time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		Actor:     "cli",
		Action:    "sale",
		Details:   "2 lines, total 60.00",
		Reference: "3f7c",
	}
	require.NoError(t, Append(dir, []Entry{first}))

	second := Entry{
		Timestamp: time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
		Actor:     "cli",
		Action:    "restore",
		Details:   "replaced local snapshot from backup",
	}
	require.NoError(t, Append(dir, []Entry{second}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestReadMissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnmarshalBadWidth(t *testing.T) {
	_, err := UnmarshalEntry([]string{"just", "three", "cells"})
	require.Error(t, err)
}
