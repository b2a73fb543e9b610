package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-xenzia/internal/core"
)

// Layout constants for the terminal board. Each board cell is two columns
// wide so the grid looks square in a terminal.
const (
	hudHeight  = 2
	cellWidth  = 2
	boardWidth = BoardSize*cellWidth + 2 // plus frame
	boardRows  = BoardSize + 2
)

// MinScreenSize returns the smallest screen that fits the HUD and the board.
func MinScreenSize() (w, h int) {
	return boardWidth, hudHeight + boardRows
}

// Render draws a snapshot into dst. It reads only the snapshot and keeps no state.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	renderHUD(dst, snap)

	minW, minH := MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		RenderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	board := boardRect(dst)
	dst.DrawBox(board, core.ColorGray)

	// Food
	fx, fy := cellOrigin(board, snap.Food)
	dst.SetColored(fx, fy, '●', core.ColorBrightRed)

	// Snake, tail first so the head is drawn on top
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		sx, sy := cellOrigin(board, snap.Snake[i])
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		dst.SetColored(sx, sy, '█', color)
		dst.SetColored(sx+1, sy, '█', color)
	}

	switch snap.Phase {
	case PhaseIdle:
		RenderOverlay(dst, "SNAKE XENZIA", "Press Enter to start")
	case PhaseGameOver:
		RenderOverlay(dst, fmt.Sprintf("Game Over - Score: %d", snap.Score), "Press Enter to play again")
	}
}

// boardRect returns the framed board area centered horizontally under the HUD.
func boardRect(dst *core.Screen) core.Rect {
	x := (dst.Width() - boardWidth) / 2
	return core.NewRect(x, hudHeight, boardWidth, boardRows)
}

// cellOrigin maps a board cell to the screen column/row of its left half.
func cellOrigin(board core.Rect, c Cell) (int, int) {
	return board.X + 1 + c.X*cellWidth, board.Y + 1 + c.Y
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, "SNAKE XENZIA", core.ColorBrightGreen)

	scores := fmt.Sprintf("Score: %d  Best: %d ", snap.Score, snap.HighScore)
	x := core.Clamp(dst.Width()-len(scores), 0, dst.Width())
	dst.DrawTextColored(x, 0, scores, core.ColorBrightYellow)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// RenderOverlay draws a centered two-line message box.
func RenderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect(0, 0, maxLen+4, 5)
	cx, cy := dst.Bounds().Center()
	box.X = cx - box.W/2
	box.Y = cy - box.H/2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorCyan)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorYellow)
}
