package spinner

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// syncBuffer guards a bytes.Buffer shared with the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStart_DrawsAndClears(t *testing.T) {
	var out syncBuffer
	stop := Start(&out, "loading results")
	time.Sleep(3 * interval)
	stop()
	stop()

	got := out.String()
	assert.Contains(t, got, "loading results")
	assert.True(t, strings.HasSuffix(got, "\r"), "line should be cleared on stop")
}

func TestStartIf_Disabled(t *testing.T) {
	var out syncBuffer
	stop := StartIf(false, &out, "loading results")
	time.Sleep(2 * interval)
	stop()

	assert.Empty(t, out.String())
}
