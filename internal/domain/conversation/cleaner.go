package conversation

// Clean coerces the categorical columns to dictionary codes and drops rows that
// are identical on every column, keeping the first occurrence.
func Clean(rows []FlatRow) *Table {
	categories := NewCategories()
	config := categories.Dictionary(ColumnConfig)
	agent := categories.Dictionary(ColumnAgent)
	sentiment := categories.Dictionary(ColumnSentiment)
	turnRating := categories.Dictionary(ColumnTurnRating)
	agent1Rating := categories.Dictionary(ColumnAgent1Rating)
	agent2Rating := categories.Dictionary(ColumnAgent2Rating)

	seen := make(map[Row]struct{}, len(rows))
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		row := Row{
			ConversationID:  r.ConversationID,
			ArticleURL:      r.ArticleURL,
			Config:          config.Intern(r.Config),
			Message:         r.Message,
			Agent:           agent.Intern(r.Agent),
			Sentiment:       sentiment.Intern(r.Sentiment),
			KnowledgeSource: r.KnowledgeSource,
			TurnRating:      turnRating.Intern(r.TurnRating),
			Agent1Rating:    agent1Rating.Intern(r.Agent1Rating),
			Agent2Rating:    agent2Rating.Intern(r.Agent2Rating),
		}
		if _, dup := seen[row]; dup {
			continue
		}
		seen[row] = struct{}{}
		out = append(out, row)
	}

	return &Table{Rows: out, Categories: categories}
}
