package handler

import (
	"bytes"
	"sync"
)

const (
	initialBufferSize = 2 << 10
	// maxPooledBuffer is the largest buffer handed back to the pool
	maxPooledBuffer   = 256 << 10
)

var encodeBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return encodeBuffers.Get().(*bytes.Buffer)
}

// putBuffer recycles buf unless it grew past maxPooledBuffer
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	encodeBuffers.Put(buf)
}
