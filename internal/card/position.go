package card

import "github.com/saravenpi/folio/internal/models"

// Position accumulates drag deltas into the card's absolute offset.
// There is no clamping: the card may be dragged fully off-screen.
type Position struct {
	offset models.Offset
}

func NewPosition() *Position {
	return &Position{}
}

func (p *Position) ApplyDelta(dx, dy int) models.Offset {
	p.offset.X += dx
	p.offset.Y += dy
	return p.offset
}

func (p *Position) Offset() models.Offset {
	return p.offset
}
