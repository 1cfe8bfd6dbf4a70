package quantity

// Operand is the right-hand side of an arithmetic or comparison operation:
// either a bare Number or a Quantity.
type Operand interface {
	operand()
}

// Number is a bare numeric operand. It is treated as a magnitude in the
// left operand's unit.
type Number float64

func (Number) operand()   {}
func (Quantity) operand() {}
