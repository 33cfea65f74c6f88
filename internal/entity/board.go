package entity

const (
	Rows    = 6
	Columns = 7
)

// Mark is the value held by a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	Player1Mark
	Player2Mark
)

func (that Mark) String() string {
	switch that {
	case Player1Mark:
		return "player1"
	case Player2Mark:
		return "player2"
	default:
		return "empty"
	}
}

// Board is the 6x7 grid. Row 0 is the top row; pieces stack upward from
// row 5 as they are dropped. The array type copies by value.
type Board [Rows][Columns]Mark

func (that Board) IsFull() bool {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if that[row][col] == Empty {
				return false
			}
		}
	}

	return true
}
