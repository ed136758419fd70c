package models

// BoardView is the consistent read handed to the renderer: every card in
// ascending creation order and every comment newest first.
type BoardView struct {
	Cards    []*Card    `json:"cards"`
	Comments []*Comment `json:"comments"`
}
