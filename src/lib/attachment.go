package lib

import (
	"bytes"
	"io"
)

type Attachment struct {
	Name string
	Data []byte
}

func (a Attachment) Reader() io.Reader {
	return bytes.NewReader(a.Data)
}
