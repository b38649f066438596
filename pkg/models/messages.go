package models

import "errors"

type MessageLevel string

const (
	LevelSuccess MessageLevel = "success"
	LevelInfo    MessageLevel = "info"
	LevelWarning MessageLevel = "warning"
	LevelError   MessageLevel = "error"
)

// Message is a human readable outcome shown to the operator.
type Message struct {
	Level MessageLevel `json:"level"`
	Text  string       `json:"text"`
}

// Messages is the ordered list of operator messages produced by one action.
type Messages []Message

func (m *Messages) Success(text string) {
	*m = append(*m, Message{Level: LevelSuccess, Text: text})
}

func (m *Messages) Info(text string) {
	*m = append(*m, Message{Level: LevelInfo, Text: text})
}

func (m *Messages) Warning(text string) {
	*m = append(*m, Message{Level: LevelWarning, Text: text})
}

func (m *Messages) Error(text string) {
	*m = append(*m, Message{Level: LevelError, Text: text})
}

// Report adds err as a warning when it marks empty input and as an error otherwise.
func (m *Messages) Report(err error) {
	if errors.Is(err, ErrEmptyInput) {
		m.Warning(err.Error())
		return
	}
	m.Error(err.Error())
}

// HasErrors reports whether any message has error level.
func (m Messages) HasErrors() bool {
	for _, msg := range m {
		if msg.Level == LevelError {
			return true
		}
	}
	return false
}
