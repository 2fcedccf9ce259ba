package models

// StreamResult carries one element of a streamed collection, or the error
// that ended the stream. Page is the remote page the value was read from.
type StreamResult[T any] struct {
	Value T
	Page  int
	Err   error
}
