package schema

// IntakeSession tracks one multi-turn question/answer exchange for a
// prediction request. FieldIndex is a cursor into the ordered field list
// of the disease; the session is removed as soon as a prediction has
// been produced.
type IntakeSession struct {
	Disease    string             `json:"disease"`
	FieldIndex int                `json:"field_index"`
	Answers    map[string]float64 `json:"answers"`
}

// Question is a single intake prompt sent back to the client.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Recommendation is one of the fixed advice cards attached to a
// completed prediction.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
