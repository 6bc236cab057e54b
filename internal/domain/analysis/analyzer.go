package analysis

import (
	"errors"

	"jan-server/services/chat-insights/internal/domain/conversation"
)

// ErrConversationNotFound is returned for an id with no rows.
var ErrConversationNotFound = errors.New("conversation not found")

// NoSentiment is reported as the sentiment of an agent with no rows.
const NoSentiment = "no_data"

// CorpusSummary holds corpus-wide counts.
type CorpusSummary struct {
	TotalConversations int `json:"total_conversations" example:"2"`
	TotalMessages      int `json:"total_messages" example:"4"`
	UniqueArticles     int `json:"unique_articles" example:"2"`
}

// ConversationSummary is the per-conversation rollup.
type ConversationSummary struct {
	ArticleURL      string `json:"article_url"`
	Agent1Messages  int    `json:"agent_1_messages"`
	Agent2Messages  int    `json:"agent_2_messages"`
	Agent1Sentiment string `json:"agent_1_sentiment"`
	Agent2Sentiment string `json:"agent_2_sentiment"`
}

// Analyzer answers read-only queries over a processed table.
// It indexes the table once; the table must not change afterwards.
type Analyzer struct {
	table   *conversation.Table
	index   map[string][]int
	order   []string
	summary CorpusSummary
}

// New indexes table by conversation id and precomputes the corpus summary.
func New(table *conversation.Table) *Analyzer {
	a := &Analyzer{
		table: table,
		index: make(map[string][]int),
	}
	articles := make(map[string]struct{})
	for i, row := range table.Rows {
		if _, ok := a.index[row.ConversationID]; !ok {
			a.order = append(a.order, row.ConversationID)
		}
		a.index[row.ConversationID] = append(a.index[row.ConversationID], i)
		articles[row.ArticleURL] = struct{}{}
	}
	a.summary = CorpusSummary{
		TotalConversations: len(a.index),
		TotalMessages:      table.Len(),
		UniqueArticles:     len(articles),
	}
	return a
}

// CorpusSummary counts distinct conversations, rows and distinct article URLs.
// The empty article URL counts as one distinct value.
func (a *Analyzer) CorpusSummary() CorpusSummary {
	return a.summary
}

// ConversationIDs returns the conversation ids in first-row order.
func (a *Analyzer) ConversationIDs() []string {
	return append([]string(nil), a.order...)
}

// ConversationSummary rolls up the rows of one conversation.
func (a *Analyzer) ConversationSummary(conversationID string) (ConversationSummary, error) {
	rows, ok := a.index[conversationID]
	if !ok || len(rows) == 0 {
		return ConversationSummary{}, ErrConversationNotFound
	}

	agents := a.table.Categories.Dictionary(conversation.ColumnAgent)
	agent1, hasAgent1 := agents.Lookup(conversation.AgentOne)
	agent2, hasAgent2 := agents.Lookup(conversation.AgentTwo)

	agent1Sentiments := make(map[string]int)
	agent2Sentiments := make(map[string]int)
	summary := ConversationSummary{
		ArticleURL: a.table.Rows[rows[0]].ArticleURL,
	}
	for _, i := range rows {
		row := a.table.Rows[i]
		switch {
		case hasAgent1 && row.Agent == agent1:
			summary.Agent1Messages++
			agent1Sentiments[a.table.Label(conversation.ColumnSentiment, row.Sentiment)]++
		case hasAgent2 && row.Agent == agent2:
			summary.Agent2Messages++
			agent2Sentiments[a.table.Label(conversation.ColumnSentiment, row.Sentiment)]++
		}
	}

	summary.Agent1Sentiment = Mode(agent1Sentiments)
	summary.Agent2Sentiment = Mode(agent2Sentiments)
	return summary, nil
}

// Mode returns the most frequent value. Ties go to the lexicographically
// smallest value; an empty set yields NoSentiment.
func Mode(counts map[string]int) string {
	best := ""
	bestCount := 0
	for value, count := range counts {
		if count > bestCount || (count == bestCount && value < best) {
			best = value
			bestCount = count
		}
	}
	if bestCount == 0 {
		return NoSentiment
	}
	return best
}
