// Package subtitles implements a small time-ordered cue queue: cues are
// inserted in source order with a start offset and a duration, finalized
// once, and read back ordered by time. Payloads are opaque to the queue.
package subtitles

import "sort"

// Cue is one queued item. ReadOrder is assigned by Finalize and increases
// monotonically in output order, which keeps cues sharing a timestamp stable.
type Cue struct {
	Start    int64
	Duration int64

	ReadOrder int
	Payload   any
}

// Queue buffers cues between the parse phase that produces them and the
// consumer that wants them in time order. Not safe for concurrent use.
type Queue struct {
	cues      []Cue
	pos       int
	finalized bool
}

func New() *Queue {
	return &Queue{}
}

// Insert appends one cue. Insertion order is preserved among cues with equal
// start times.
func (q *Queue) Insert(start, duration int64, payload any) {
	if q.finalized {
		panic("subtitles: insert into finalized queue")
	}
	q.cues = append(q.cues, Cue{Start: start, Duration: duration, Payload: payload})
}

// Finalize orders the queue by start time and assigns read order. No more
// inserts are allowed afterwards.
func (q *Queue) Finalize() {
	if q.finalized {
		return
	}
	sort.SliceStable(q.cues, func(i, j int) bool {
		return q.cues[i].Start < q.cues[j].Start
	})
	for i := range q.cues {
		q.cues[i].ReadOrder = i
	}
	q.finalized = true
}

func (q *Queue) Len() int {
	return len(q.cues)
}

// Next returns the cue at the current read position and advances it. The
// second value is false once the queue is drained.
func (q *Queue) Next() (*Cue, bool) {
	if !q.finalized || q.pos >= len(q.cues) {
		return nil, false
	}
	cue := &q.cues[q.pos]
	q.pos++
	return cue, true
}

// Seek moves the read position to the first cue still active at or after ts,
// i.e. the first cue whose end lies beyond it.
func (q *Queue) Seek(ts int64) {
	q.pos = sort.Search(len(q.cues), func(i int) bool {
		return q.cues[i].Start+q.cues[i].Duration > ts
	})
}

// Rewind resets the read position to the beginning.
func (q *Queue) Rewind() {
	q.pos = 0
}
