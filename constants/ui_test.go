package constants

import "testing"

func TestGameOverRowCentered(t *testing.T) {
	row := GameOverRow()
	if row != 24 {
		t.Errorf("Expected game over row 24, got %d", row)
	}
	if hint := row + 2; hint != int(GridHeight)/2+1 {
		t.Errorf("Expected hint row %d, got %d", int(GridHeight)/2+1, hint)
	}
}

func TestStartInsideGrid(t *testing.T) {
	if StartX >= GridWidth || StartY >= GridHeight {
		t.Errorf("Start (%d,%d) outside %dx%d grid", StartX, StartY, GridWidth, GridHeight)
	}
}
