package model

// Button is one tappable action. Data comes back verbatim with the tap.
type Button struct {
	Text string
	Data string
}

// Menu is a grid of buttons attached to an outgoing message, row by row.
type Menu [][]Button

func SingleColumn(buttons ...Button) Menu {
	m := make(Menu, len(buttons))
	for i, b := range buttons {
		m[i] = []Button{b}
	}
	return m
}
