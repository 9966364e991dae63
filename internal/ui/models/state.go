package models

// PickerState holds the suggestion picker's view state.
type PickerState struct {
	Title   string
	Choices []string
	Index   int
}

// Selected returns the highlighted choice, or "" when Index is out of range.
func (s PickerState) Selected() string {
	if s.Index < 0 || s.Index >= len(s.Choices) {
		return ""
	}
	return s.Choices[s.Index]
}
