package conversation

// Category is a code into a column's Dictionary.
type Category uint32

// Dictionary maps the labels seen in one categorical column to dense codes.
// Codes are assigned in first-seen order; unseen labels become new categories.
type Dictionary struct {
	labels []string
	codes  map[string]Category
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{codes: make(map[string]Category)}
}

// Intern returns the code for label, adding it when new.
func (d *Dictionary) Intern(label string) Category {
	if code, ok := d.codes[label]; ok {
		return code
	}
	code := Category(len(d.labels))
	d.labels = append(d.labels, label)
	d.codes[label] = code
	return code
}

// Lookup returns the code for label without adding it.
func (d *Dictionary) Lookup(label string) (Category, bool) {
	code, ok := d.codes[label]
	return code, ok
}

// Label returns the label for code, or "" for an unknown code.
func (d *Dictionary) Label(code Category) string {
	if int(code) >= len(d.labels) {
		return ""
	}
	return d.labels[code]
}

// Labels returns a copy of the labels in code order.
func (d *Dictionary) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

// Len returns the number of categories.
func (d *Dictionary) Len() int {
	return len(d.labels)
}

// Column names a categorical column.
type Column string

const (
	ColumnConfig       Column = "config"
	ColumnAgent        Column = "agent"
	ColumnSentiment    Column = "sentiment"
	ColumnTurnRating   Column = "turn_rating"
	ColumnAgent1Rating Column = "agent_1_rating"
	ColumnAgent2Rating Column = "agent_2_rating"
)

// CategoricalColumns lists the columns coerced by Clean.
var CategoricalColumns = []Column{
	ColumnConfig,
	ColumnAgent,
	ColumnSentiment,
	ColumnTurnRating,
	ColumnAgent1Rating,
	ColumnAgent2Rating,
}

// Categories holds one dictionary per categorical column.
type Categories struct {
	dicts map[Column]*Dictionary
}

// NewCategories returns empty dictionaries for every categorical column.
func NewCategories() *Categories {
	dicts := make(map[Column]*Dictionary, len(CategoricalColumns))
	for _, col := range CategoricalColumns {
		dicts[col] = NewDictionary()
	}
	return &Categories{dicts: dicts}
}

// Dictionary returns the dictionary for col, or nil if col is not categorical.
func (c *Categories) Dictionary(col Column) *Dictionary {
	return c.dicts[col]
}
