package render

import (
	"bytes"
	"sync"
)

// Pool capacity (corpus-validated: generator/pool.go's small-tier size
// covers the common case of one model or builder file).
const renderBufferInitialSize = 8 * 1024
const renderBufferMaxSize = 1 << 20

var renderBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, renderBufferInitialSize))
	},
}

func getRenderBuffer() *bytes.Buffer {
	buf := renderBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putRenderBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > renderBufferMaxSize {
		return
	}
	renderBufferPool.Put(buf)
}
