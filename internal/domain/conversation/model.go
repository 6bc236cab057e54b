package conversation

import "strings"

// Agent identifiers used by the analysis queries.
const (
	AgentOne = "agent_1"
	AgentTwo = "agent_2"
)

// KnowledgeSourceSeparator joins a turn's knowledge sources into one column value.
const KnowledgeSourceSeparator = ", "

// ConversationRecord is one top-level entry of the input document.
// Every scalar field defaults to "" when absent or of an unexpected JSON type.
type ConversationRecord struct {
	ID                 string            `json:"-"`
	ArticleURL         string            `json:"article_url,omitempty" jsonschema:"description=Source article the conversation is about"`
	Config             string            `json:"config,omitempty" jsonschema:"description=Conversation configuration label"`
	ConversationRating map[string]string `json:"conversation_rating,omitempty" jsonschema:"description=Rating label per agent id"`
	Content            []MessageTurn     `json:"content,omitempty"`
}

// MessageTurn is one message exchanged by an agent.
type MessageTurn struct {
	Message         string   `json:"message,omitempty"`
	Agent           string   `json:"agent,omitempty" jsonschema:"example=agent_1,example=agent_2"`
	Sentiment       string   `json:"sentiment,omitempty"`
	KnowledgeSource []string `json:"knowledge_source,omitempty"`
	TurnRating      string   `json:"turn_rating,omitempty"`
}

// FlatRow is the cross product of a record's scalar fields with one of its turns.
type FlatRow struct {
	ConversationID  string
	ArticleURL      string
	Config          string
	Message         string
	Agent           string
	Sentiment       string
	KnowledgeSource string
	TurnRating      string
	Agent1Rating    string
	Agent2Rating    string
}

// Flatten expands the record into one FlatRow per turn, in turn order.
func (r ConversationRecord) Flatten() []FlatRow {
	rows := make([]FlatRow, 0, len(r.Content))
	agent1Rating := r.ConversationRating[AgentOne]
	agent2Rating := r.ConversationRating[AgentTwo]
	for _, turn := range r.Content {
		rows = append(rows, FlatRow{
			ConversationID:  r.ID,
			ArticleURL:      r.ArticleURL,
			Config:          r.Config,
			Message:         turn.Message,
			Agent:           turn.Agent,
			Sentiment:       turn.Sentiment,
			KnowledgeSource: joinKnowledgeSources(turn.KnowledgeSource),
			TurnRating:      turn.TurnRating,
			Agent1Rating:    agent1Rating,
			Agent2Rating:    agent2Rating,
		})
	}
	return rows
}

func joinKnowledgeSources(sources []string) string {
	return strings.Join(sources, KnowledgeSourceSeparator)
}

// ProcessedRow is a FlatRow plus its normalized message.
type ProcessedRow struct {
	FlatRow
	ProcessedMessage string
}

// Columns lists the output columns of a processed table, in order.
var Columns = []string{
	"conversation_id",
	"article_url",
	"config",
	"message",
	"agent",
	"sentiment",
	"knowledge_source",
	"turn_rating",
	"agent_1_rating",
	"agent_2_rating",
	"processed_message",
}

// Values returns the row's fields in Columns order.
func (r ProcessedRow) Values() []string {
	return []string{
		r.ConversationID,
		r.ArticleURL,
		r.Config,
		r.Message,
		r.Agent,
		r.Sentiment,
		r.KnowledgeSource,
		r.TurnRating,
		r.Agent1Rating,
		r.Agent2Rating,
		r.ProcessedMessage,
	}
}
