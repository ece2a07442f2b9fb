package entities

// Field length limits shared by every registry.
const (
	MaxNameLen        = 64
	MaxDescriptionLen = 128
)
