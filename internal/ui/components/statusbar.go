package components

import "rocket/internal/ui"

// StatusBar shows the last launch or power action error under the results
type StatusBar struct {
	Message string
	Width   int
}

// NewStatusBar creates a new, empty status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{Width: 80}
}

// SetError shows err, or clears the bar when err is nil
func (s *StatusBar) SetError(err error) {
	if err == nil {
		s.Message = ""
		return
	}
	s.Message = err.Error()
}

// IsVisible returns whether there is an error to show
func (s *StatusBar) IsVisible() bool {
	return s.Message != ""
}

// View renders the status bar
func (s *StatusBar) View() string {
	if !s.IsVisible() {
		return ""
	}

	msg := s.Message
	maxLen := s.Width - 8
	if r := []rune(msg); maxLen > 3 && len(r) > maxLen {
		msg = string(r[:maxLen-3]) + "..."
	}
	return ui.ErrorBoxStyle.Width(max(s.Width-2, 1)).Render(ui.RenderError(msg))
}
