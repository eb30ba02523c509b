package domain

// ChatTurn is one question/answer exchange in a session's chat log.
type ChatTurn struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}
