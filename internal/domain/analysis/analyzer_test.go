package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/chat-insights/internal/domain/conversation"
)

func fixtureTable() *conversation.Table {
	return conversation.Clean([]conversation.FlatRow{
		{ConversationID: "c1", ArticleURL: "https://a.example/1", Agent: conversation.AgentOne, Sentiment: "Happy", Message: "m1"},
		{ConversationID: "c1", ArticleURL: "https://a.example/1", Agent: conversation.AgentTwo, Sentiment: "Curious to dive deeper", Message: "m2"},
		{ConversationID: "c1", ArticleURL: "https://a.example/1", Agent: conversation.AgentOne, Sentiment: "Happy", Message: "m3"},
		{ConversationID: "c2", ArticleURL: "", Agent: conversation.AgentOne, Sentiment: "Neutral", Message: "m4"},
		{ConversationID: "c2", ArticleURL: "", Agent: "moderator", Sentiment: "Angry", Message: "m5"},
		{ConversationID: "c3", ArticleURL: "", Agent: conversation.AgentTwo, Sentiment: "Sad", Message: "m6"},
	})
}

func TestCorpusSummary(t *testing.T) {
	table := fixtureTable()
	a := New(table)

	assert.Equal(t, CorpusSummary{
		TotalConversations: 3,
		TotalMessages:      6,
		UniqueArticles:     2,
	}, a.CorpusSummary())
	assert.Equal(t, table.Len(), a.CorpusSummary().TotalMessages)
	assert.Equal(t, []string{"c1", "c2", "c3"}, a.ConversationIDs())
}

func TestConversationSummary(t *testing.T) {
	a := New(fixtureTable())

	got, err := a.ConversationSummary("c1")
	require.NoError(t, err)
	assert.Equal(t, ConversationSummary{
		ArticleURL:      "https://a.example/1",
		Agent1Messages:  2,
		Agent2Messages:  1,
		Agent1Sentiment: "Happy",
		Agent2Sentiment: "Curious to dive deeper",
	}, got)
}

func TestConversationSummaryAgentWithoutRows(t *testing.T) {
	a := New(fixtureTable())

	got, err := a.ConversationSummary("c2")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Agent1Messages)
	assert.Equal(t, 0, got.Agent2Messages)
	assert.Equal(t, "Neutral", got.Agent1Sentiment)
	assert.Equal(t, NoSentiment, got.Agent2Sentiment)

	got, err = a.ConversationSummary("c3")
	require.NoError(t, err)
	assert.Equal(t, NoSentiment, got.Agent1Sentiment)
	assert.Equal(t, "Sad", got.Agent2Sentiment)
}

func TestConversationSummaryCountsNeverExceedRows(t *testing.T) {
	table := fixtureTable()
	a := New(table)

	perConversation := map[string]int{}
	for _, row := range table.Rows {
		perConversation[row.ConversationID]++
	}
	for id, total := range perConversation {
		got, err := a.ConversationSummary(id)
		require.NoError(t, err)
		assert.LessOrEqual(t, got.Agent1Messages+got.Agent2Messages, total, id)
	}
}

func TestConversationSummaryNotFound(t *testing.T) {
	a := New(fixtureTable())

	got, err := a.ConversationSummary("does-not-exist")
	assert.ErrorIs(t, err, ErrConversationNotFound)
	assert.Equal(t, ConversationSummary{}, got)
}

func TestConversationSummaryTableWithoutAgents(t *testing.T) {
	a := New(conversation.Clean([]conversation.FlatRow{{ConversationID: "c1", Agent: "bot"}}))

	got, err := a.ConversationSummary("c1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Agent1Messages)
	assert.Equal(t, NoSentiment, got.Agent1Sentiment)
	assert.Equal(t, NoSentiment, got.Agent2Sentiment)
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int
		want   string
	}{
		{"empty", map[string]int{}, NoSentiment},
		{"single", map[string]int{"Happy": 1}, "Happy"},
		{"clear winner", map[string]int{"Happy": 1, "Sad": 3}, "Sad"},
		{"tie picks smallest", map[string]int{"Surprised": 2, "Angry": 2, "Happy": 1}, "Angry"},
		{"empty label participates", map[string]int{"": 2, "Neutral": 2}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mode(tt.counts))
		})
	}
}
