package connectfour

import "github.com/rocketscienceinc/connectfour-engine/internal/entity"

// hasWinningLine re-scans the whole board for the given mark after a move.
func (that *Game) hasWinningLine(mark entity.Mark) bool {
	return that.hasHorizontalLine(mark) ||
		that.hasVerticalLine(mark) ||
		that.hasDownRightLine(mark) ||
		that.hasDownLeftLine(mark)
}

// hasHorizontalLine scans each row left to right counting the run of
// consecutive cells holding mark; any other value, the opponent's mark
// included, resets the run.
func (that *Game) hasHorizontalLine(mark entity.Mark) bool {
	for row := 0; row < entity.Rows; row++ {
		run := 0
		for col := 0; col < entity.Columns; col++ {
			if that.board[row][col] != mark {
				run = 0
				continue
			}

			run++
			if run == winLength {
				return true
			}
		}
	}

	return false
}

// hasVerticalLine is the same run scan in column-major order, top to bottom
// within each column.
func (that *Game) hasVerticalLine(mark entity.Mark) bool {
	for col := 0; col < entity.Columns; col++ {
		run := 0
		for row := 0; row < entity.Rows; row++ {
			if that.board[row][col] != mark {
				run = 0
				continue
			}

			run++
			if run == winLength {
				return true
			}
		}
	}

	return false
}

// hasDownRightLine checks every anchor cell that still has room for four
// cells extending down and to the right.
func (that *Game) hasDownRightLine(mark entity.Mark) bool {
	for row := 0; row <= entity.Rows-winLength; row++ {
		for col := 0; col <= entity.Columns-winLength; col++ {
			if that.board[row][col] == mark &&
				that.board[row+1][col+1] == mark &&
				that.board[row+2][col+2] == mark &&
				that.board[row+3][col+3] == mark {
				return true
			}
		}
	}

	return false
}

// hasDownLeftLine is the mirror check, anchored from column 3 onward.
func (that *Game) hasDownLeftLine(mark entity.Mark) bool {
	for row := 0; row <= entity.Rows-winLength; row++ {
		for col := winLength - 1; col < entity.Columns; col++ {
			if that.board[row][col] == mark &&
				that.board[row+1][col-1] == mark &&
				that.board[row+2][col-2] == mark &&
				that.board[row+3][col-3] == mark {
				return true
			}
		}
	}

	return false
}
