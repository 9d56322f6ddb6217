package dto

import "io"

// Upload is one file received with a request.
type Upload struct {
	Filename string
	Content  io.Reader
}
