package parser

import (
	"io"

	"github.com/Belphemur/GameHub/internal/models"
)

// ListParser decodes and validates a paginated collection payload
type ListParser[T any] interface {
	ParseList(body io.Reader) (*models.Page[T], error)
}

// SingleResultParser decodes and validates a single entity payload
type SingleResultParser[T any] interface {
	ParseSingle(body io.Reader) (*T, error)
}
