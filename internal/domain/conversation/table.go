package conversation

// Row is a cleaned row: categorical columns are stored as Category codes.
// Row is comparable so that exact duplicates can be detected with a map.
type Row struct {
	ConversationID   string
	ArticleURL       string
	Config           Category
	Message          string
	Agent            Category
	Sentiment        Category
	KnowledgeSource  string
	TurnRating       Category
	Agent1Rating     Category
	Agent2Rating     Category
	ProcessedMessage string
}

// Table is the cleaned record set. Rows keep the original load order.
type Table struct {
	Rows       []Row
	Categories *Categories
}

// Len returns the row count.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Label decodes code for the categorical column col.
func (t *Table) Label(col Column, code Category) string {
	dict := t.Categories.Dictionary(col)
	if dict == nil {
		return ""
	}
	return dict.Label(code)
}

// Record decodes row i back into its string form.
func (t *Table) Record(i int) ProcessedRow {
	row := t.Rows[i]
	return ProcessedRow{
		FlatRow: FlatRow{
			ConversationID:  row.ConversationID,
			ArticleURL:      row.ArticleURL,
			Config:          t.Label(ColumnConfig, row.Config),
			Message:         row.Message,
			Agent:           t.Label(ColumnAgent, row.Agent),
			Sentiment:       t.Label(ColumnSentiment, row.Sentiment),
			KnowledgeSource: row.KnowledgeSource,
			TurnRating:      t.Label(ColumnTurnRating, row.TurnRating),
			Agent1Rating:    t.Label(ColumnAgent1Rating, row.Agent1Rating),
			Agent2Rating:    t.Label(ColumnAgent2Rating, row.Agent2Rating),
		},
		ProcessedMessage: row.ProcessedMessage,
	}
}
