package components

import "github.com/abhisek/simplify/internal/ui/theme"

// DigitBox renders a short numeric entry field. It holds no state of its
// own: the value and focus come from the exercise input buffers.
type DigitBox struct {
	Value   string
	Focused bool
	Width   int
}

// View renders the box with a cursor when focused.
func (d DigitBox) View() string {
	w := d.Width
	if w <= 0 {
		w = 5
	}

	content := d.Value
	if d.Focused {
		content += "▏"
	}
	if content == "" {
		content = " "
	}

	style := theme.BoxBlurred
	if d.Focused {
		style = theme.BoxFocused
	}
	return style.Width(w).Render(content)
}
