package utils

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used across the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used across the CLI application.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

var colors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
	StatusMessage:  StatusColor,
}

// DecorateText shows the message types in different colors.
// Unknown message types are returned unchanged.
func DecorateText(s string, msgType MessageType) string {
	c, ok := colors[msgType]
	if !ok {
		return s
	}
	return c + s + DefaultColor
}

// Decorator colors text only when enabled, so the same call sites serve
// terminals and plain sinks such as files or pipes.
type Decorator struct {
	Enabled bool
}

// Text decorates s with the color of msgType if the decorator is enabled.
func (d Decorator) Text(s string, msgType MessageType) string {
	if !d.Enabled {
		return s
	}
	return DecorateText(s, msgType)
}
