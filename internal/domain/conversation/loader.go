package conversation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/buger/jsonparser"
)

var (
	// ErrRead reports an unreadable input file.
	ErrRead = errors.New("read conversations")
	// ErrParse reports a document that is not a JSON object of objects.
	ErrParse = errors.New("parse conversations")
)

// Load reads the document at path and flattens it.
func Load(path string) ([]FlatRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Parse(data)
}

// Parse flattens a document shaped as {conversation_id: ConversationRecord}.
// Rows follow document order: conversation first, then turn within conversation.
func Parse(data []byte) ([]FlatRow, error) {
	records, err := ParseRecords(data)
	if err != nil {
		return nil, err
	}
	var rows []FlatRow
	for _, record := range records {
		rows = append(rows, record.Flatten()...)
	}
	return rows, nil
}

// ParseRecords decodes the document into records in document order.
// A repeated conversation id keeps its first position and its last value.
func ParseRecords(data []byte) ([]ConversationRecord, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrParse)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top level must be an object keyed by conversation id", ErrParse)
	}

	var records []ConversationRecord
	position := make(map[string]int)
	err := jsonparser.ObjectEach(trimmed, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		// ObjectEach hands over keys already unescaped
		id := string(key)
		if dataType != jsonparser.Object {
			return fmt.Errorf("conversation %q is a JSON %s, not an object", id, dataType)
		}
		record := parseRecord(id, value)
		if i, seen := position[id]; seen {
			records[i] = record
			return nil
		}
		position[id] = len(records)
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return records, nil
}

func parseRecord(id string, data []byte) ConversationRecord {
	record := ConversationRecord{
		ID:         id,
		ArticleURL: stringField(data, "article_url"),
		Config:     stringField(data, "config"),
	}

	if rating, dataType, _, err := jsonparser.Get(data, "conversation_rating"); err == nil && dataType == jsonparser.Object {
		record.ConversationRating = map[string]string{}
		_ = jsonparser.ObjectEach(rating, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
			if dataType != jsonparser.String {
				return nil
			}
			agent := string(key)
			label, err := jsonparser.ParseString(value)
			if err != nil {
				return nil
			}
			record.ConversationRating[agent] = label
			return nil
		})
	}

	if content, dataType, _, err := jsonparser.Get(data, "content"); err == nil && dataType == jsonparser.Array {
		_, _ = jsonparser.ArrayEach(content, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
			// non-object turns carry no fields to flatten
			if dataType != jsonparser.Object {
				return
			}
			record.Content = append(record.Content, parseTurn(value))
		})
	}

	return record
}

func parseTurn(data []byte) MessageTurn {
	turn := MessageTurn{
		Message:    stringField(data, "message"),
		Agent:      stringField(data, "agent"),
		Sentiment:  stringField(data, "sentiment"),
		TurnRating: stringField(data, "turn_rating"),
	}

	value, dataType, _, err := jsonparser.Get(data, "knowledge_source")
	if err != nil {
		return turn
	}
	switch dataType {
	case jsonparser.Array:
		_, _ = jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, _ int, _ error) {
			if itemType != jsonparser.String {
				return
			}
			if s, err := jsonparser.ParseString(item); err == nil {
				turn.KnowledgeSource = append(turn.KnowledgeSource, s)
			}
		})
	case jsonparser.String:
		if s, err := jsonparser.ParseString(value); err == nil && s != "" {
			turn.KnowledgeSource = []string{s}
		}
	}
	return turn
}

// stringField returns the string at key, or "" when missing or not a string.
func stringField(data []byte, key string) string {
	s, err := jsonparser.GetString(data, key)
	if err != nil {
		return ""
	}
	return s
}
