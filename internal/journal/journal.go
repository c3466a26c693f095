// Package journal records inventory notifications as zstd-compressed JSON
// lines, one file per hour of event time.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/gravitas-games/gridstash/pkg/inventory"
)

const hourLayout = "2006-01-02-15"

// Entry is one journal line.
type Entry struct {
	Time      time.Time        `json:"time"`
	Inventory string           `json:"inventory"`
	Event     string           `json:"event"`
	ItemID    uuid.UUID        `json:"item_id"`
	Kind      inventory.ItemID `json:"kind"`
	Amount    int              `json:"amount"`
	Origin    *inventory.Point `json:"origin,omitempty"`
}

// Option configures a Journal.
type Option func(*Journal)

// WithClock sets the clock used to timestamp recorded events.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		j.now = now
	}
}

// segment is the open file for one hour. Each segment is written as a single
// zstd frame; reopening an hour appends another frame.
type segment struct {
	hour string
	f    *os.File
	enc  *zstd.Encoder
	buf  *bufio.Writer
}

func (s *segment) append(line []byte) error {
	if _, err := s.buf.Write(line); err != nil {
		return err
	}
	if err := s.buf.WriteByte('\n'); err != nil {
		return err
	}
	return s.buf.Flush()
}

// close finishes the frame and releases the file. The first error wins.
func (s *segment) close() error {
	err := s.buf.Flush()
	if cerr := s.enc.Close(); err == nil {
		err = cerr
	}
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Journal subscribes to inventories and appends their events to
// <dir>/<prefix>-YYYY-MM-DD-HH.jsonl.zst.
type Journal struct {
	dir    string
	prefix string
	now    func() time.Time

	mu     sync.Mutex
	seg    *segment
	subs   map[*inventory.Inventory]inventory.SubscriptionID
	errors int
}

// New creates a journal writing under dir. Files are opened lazily on the
// first entry.
func New(dir, prefix string, opts ...Option) *Journal {
	j := &Journal{
		dir:    dir,
		prefix: prefix,
		now:    time.Now,
		subs:   make(map[*inventory.Inventory]inventory.SubscriptionID),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Path returns the file holding entries from the hour containing t.
func (j *Journal) Path(t time.Time) string {
	return filepath.Join(j.dir, fmt.Sprintf("%s-%s.jsonl.zst", j.prefix, t.UTC().Format(hourLayout)))
}

// Attach starts recording events from inv.
func (j *Journal) Attach(inv *inventory.Inventory) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.subs[inv]; ok {
		return
	}
	j.subs[inv] = inv.Subscribe(j.record)
}

// Detach stops recording events from inv.
func (j *Journal) Detach(inv *inventory.Inventory) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if id, ok := j.subs[inv]; ok {
		inv.Unsubscribe(id)
		delete(j.subs, inv)
	}
}

// Errors returns how many events could not be written.
func (j *Journal) Errors() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.errors
}

// Append writes e to the file for the hour of e.Time, switching files when
// the hour changes.
func (j *Journal) Append(e Entry) error {
	line, err := json.Marshal(e)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	seg, err := j.segmentFor(e.Time)
	if err != nil {
		return err
	}
	return seg.append(line)
}

// Close detaches every inventory and closes the open file.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	for inv, id := range j.subs {
		inv.Unsubscribe(id)
	}
	j.subs = make(map[*inventory.Inventory]inventory.SubscriptionID)
	return j.closeSegment()
}

func (j *Journal) record(ev inventory.Event) {
	e := Entry{
		Time:      j.now().UTC(),
		Inventory: ev.Inventory,
		Event:     ev.Type.String(),
		ItemID:    ev.Item.ID,
		Amount:    ev.Item.Amount(),
	}
	if ev.Item.Def != nil {
		e.Kind = ev.Item.Def.ID
	}
	if ev.Type == inventory.EventItemAdded {
		origin := ev.Origin
		e.Origin = &origin
	}
	if err := j.Append(e); err != nil {
		j.mu.Lock()
		j.errors++
		j.mu.Unlock()
	}
}

// segmentFor returns the open segment for t's hour, opening it if needed.
// Caller holds j.mu.
func (j *Journal) segmentFor(t time.Time) (*segment, error) {
	hour := t.UTC().Format(hourLayout)
	if j.seg != nil && j.seg.hour == hour {
		return j.seg, nil
	}
	if err := j.closeSegment(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(j.Path(t), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	j.seg = &segment{hour: hour, f: f, enc: enc, buf: bufio.NewWriter(enc)}
	return j.seg, nil
}

func (j *Journal) closeSegment() error {
	if j.seg == nil {
		return nil
	}
	err := j.seg.close()
	j.seg = nil
	return err
}

// ReadAll decodes every entry of a journal file.
func ReadAll(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads zstd-compressed JSON lines from r. Concatenated frames are
// read as one stream.
func Decode(r io.Reader) ([]Entry, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []Entry
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("decode journal line %d: %w", len(out)+1, err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
