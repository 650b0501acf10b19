package domain

// PromptContext holds the values substituted into the chatbot system prompt.
type PromptContext struct {
	CityName  string
	ClubName  string
	CoachName string
	CoachInfo string
}

// Page is an encyclopedia lookup result. Summary is only meaningful when
// Exists is true.
type Page struct {
	Title   string
	Exists  bool
	Summary string
}
