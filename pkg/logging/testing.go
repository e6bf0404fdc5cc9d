package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// Recorder captures JSON log lines written during a test.
type Recorder struct {
	Logger *zerolog.Logger

	mu  sync.Mutex
	buf bytes.Buffer
}

// NewRecorder returns a trace-level Recorder and lifts the global level for
// the duration of t.
func NewRecorder(t testing.TB) *Recorder {
	t.Helper()

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	r := &Recorder{}
	logger := zerolog.New(r).Level(zerolog.TraceLevel)
	r.Logger = &logger
	return r
}

func (r *Recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

// String returns everything logged so far.
func (r *Recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

// Entries decodes each logged line. Lines that are not JSON are skipped.
func (r *Recorder) Entries() []map[string]any {
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(r.String()), "\n") {
		var entry map[string]any
		if json.Unmarshal([]byte(line), &entry) == nil {
			out = append(out, entry)
		}
	}
	return out
}

// Find returns the first entry whose message is msg.
func (r *Recorder) Find(msg string) (map[string]any, bool) {
	for _, e := range r.Entries() {
		if e[zerolog.MessageFieldName] == msg {
			return e, true
		}
	}
	return nil, false
}

// AssertLogged fails t unless every fragment appears in the output.
func (r *Recorder) AssertLogged(t testing.TB, fragments ...string) {
	t.Helper()
	out := r.String()
	for _, f := range fragments {
		if !strings.Contains(out, f) {
			t.Errorf("log output missing %q\n%s", f, out)
		}
	}
}

// Discard silences the default logger until t ends.
func Discard(t testing.TB) {
	t.Helper()
	prev := *Default()
	SetDefault(zerolog.Nop())
	t.Cleanup(func() { SetDefault(prev) })
}
