package mock

import "sync"

// IOWriter is an in-memory io.Writer for capturing log output in tests. Scan
// workers log concurrently so all access is serialized.
type IOWriter struct {
	mu   sync.Mutex
	line []byte
}

func (t *IOWriter) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.line = make([]byte, 0)
}

func (t *IOWriter) Write(b []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.line = append(t.line, b...)

	return len(b), nil
}

func (t *IOWriter) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.line)
}

func (t *IOWriter) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.line)
}
