package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/chat-insights/internal/domain/conversation"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRunWritesCSV(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.csv")

	stdout, err := execute(t, "run", "--input", filepath.Join("testdata", "chats.json"), "--output", output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Pipeline complete")
	assert.Contains(t, stdout, output)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 5)
	assert.Equal(t, conversation.Columns, records[0])
	assert.Equal(t, "are you fan of google or microsoft", records[1][10])
	assert.Equal(t, "FS1, FS2", records[2][6])
	assert.Equal(t, "t_5e2c5a1b-0000-4d7e-9e5e-7d8f5b5f1a11", records[4][0])
}

func TestRunRejectsUnknownPolicy(t *testing.T) {
	_, err := execute(t, "run", "--policy", "aggressive", "--input", filepath.Join("testdata", "chats.json"),
		"--output", filepath.Join(t.TempDir(), "out.csv"))
	assert.ErrorContains(t, err, "aggressive")
}

func TestRunMissingInput(t *testing.T) {
	_, err := execute(t, "run", "--input", filepath.Join(t.TempDir(), "missing.json"),
		"--output", filepath.Join(t.TempDir(), "out.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, conversation.ErrRead)
}

func TestSummaryCorpus(t *testing.T) {
	stdout, err := execute(t, "summary", "--input", filepath.Join("testdata", "chats.json"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Corpus summary")
	assert.Contains(t, stdout, "total messages")
	assert.Contains(t, stdout, "4")
}

func TestSummaryConversation(t *testing.T) {
	stdout, err := execute(t, "summary", "--input", filepath.Join("testdata", "chats.json"),
		"--conversation", "t_d004c097-424d-45d4-8f91-833d85c2da31")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Curious to dive deeper")
	assert.Contains(t, stdout, "the-price-of-greatness")

	_, err = execute(t, "summary", "--input", filepath.Join("testdata", "chats.json"), "--conversation", "t_nope")
	assert.Error(t, err)
}

func TestSchemaIsJSON(t *testing.T) {
	stdout, err := execute(t, "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &schema))
	assert.Equal(t, "object", schema["type"])
}
