package models

// TileStatus is the rendering state of one letter tile.
type TileStatus string

const (
	TileEmpty         TileStatus = "empty"
	TileFilled        TileStatus = "filled"
	TileCorrect       TileStatus = "correct"
	TileWrongPosition TileStatus = "wrong-position"
	TileWrong         TileStatus = "wrong"
)

// TileState is one cell of the guess grid. The grid is recomputed from the
// guess history and target word on every request; it is never persisted.
type TileState struct {
	Letter string     `json:"letter"`
	Status TileStatus `json:"status"`
}

// KeyStatus is the aggregated keyboard state of a single letter. Letters that
// were never guessed are absent from the keyboard map entirely.
type KeyStatus string

const (
	KeyCorrect       KeyStatus = "correct"
	KeyWrongPosition KeyStatus = "wrong-position"
	KeyWrong         KeyStatus = "wrong"
)
