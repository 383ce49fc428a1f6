package network

import "github.com/lixenwraith/snake-chase/engine"

// MessageType identifies server message payloads
const (
	MsgFrame = "frame"
)

// ClientMessage is sent by the browser on each key press
// Action is one of up, down, left, right, restart, quit
type ClientMessage struct {
	Action string `json:"action"`
}

// CellMessage is a glyph at a grid cell
type CellMessage struct {
	X     uint8  `json:"x"`
	Y     uint8  `json:"y"`
	Glyph string `json:"glyph"`
}

// FrameMessage is the wire form of an engine snapshot
type FrameMessage struct {
	Type         string        `json:"type"`
	Segments     []CellMessage `json:"segments"`
	Erase        []CellMessage `json:"erase,omitempty"`
	Target       CellMessage   `json:"target"`
	Score        int           `json:"score"`
	ScoreText    string        `json:"scoreText"`
	GameOver     bool          `json:"gameOver"`
	GameOverText []string      `json:"gameOverText,omitempty"`
	Clear        bool          `json:"clear,omitempty"`
	Quit         bool          `json:"quit,omitempty"`
	Tick         uint64        `json:"tick"`
}

// EncodeFrame converts a snapshot to its wire form
func EncodeFrame(snap engine.Snapshot) FrameMessage {
	return FrameMessage{
		Type:         MsgFrame,
		Segments:     encodeCells(snap.Segments),
		Erase:        encodeCells(snap.Erase),
		Target:       encodeCell(snap.Target),
		Score:        snap.Score,
		ScoreText:    snap.ScoreText,
		GameOver:     snap.GameOver,
		GameOverText: snap.GameOverText,
		Clear:        snap.Clear,
		Quit:         snap.Quit,
		Tick:         snap.Tick,
	}
}

func encodeCell(c engine.Cell) CellMessage {
	return CellMessage{X: c.Position.X, Y: c.Position.Y, Glyph: string(c.Glyph)}
}

func encodeCells(cells []engine.Cell) []CellMessage {
	if len(cells) == 0 {
		return nil
	}
	out := make([]CellMessage, len(cells))
	for i, c := range cells {
		out[i] = encodeCell(c)
	}
	return out
}
