package engine

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/underwell/component"
)

// Snapshot is a read-only copy of the world polled by drivers each frame
type Snapshot struct {
	Tick   uint64  `msgpack:"tick"`
	Width  float64 `msgpack:"width"`
	Height float64 `msgpack:"height"`

	Blocks     []component.Block     `msgpack:"blocks"`
	Turrets    []component.Turret    `msgpack:"turrets"`
	Traps      []component.Trap      `msgpack:"traps"`
	Bombs      []component.Bomb      `msgpack:"bombs"`
	Conveyors  []component.Conveyor  `msgpack:"conveyors"`
	Monsters   []component.Monster   `msgpack:"monsters"`
	Resonators []component.Resonator `msgpack:"resonators"`
	Everstones []component.Everstone `msgpack:"everstones"`

	Running             bool      `msgpack:"running"`
	Time                float64   `msgpack:"time"`
	High                float64   `msgpack:"high"`
	ProductionStartedAt time.Time `msgpack:"production_started_at"`
}

// Snapshot copies every collection by value
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:   w.Tick,
		Width:  w.Config.Width,
		Height: w.Config.Height,

		Blocks:     copyValues(w.Blocks),
		Turrets:    copyValues(w.Turrets),
		Traps:      copyValues(w.Traps),
		Bombs:      copyValues(w.Bombs),
		Conveyors:  copyValues(w.Conveyors),
		Monsters:   copyValues(w.Monsters),
		Resonators: copyValues(w.Resonators),
		Everstones: copyValues(w.Everstones),

		Running:             w.Running,
		Time:                w.Time,
		High:                w.High,
		ProductionStartedAt: w.ProductionStartedAt,
	}
}

func copyValues[T any](src []*T) []T {
	out := make([]T, len(src))
	for i, p := range src {
		out[i] = *p
	}
	return out
}

// Produced returns the lifetime everstone count across resonators
func (s *Snapshot) Produced() int {
	total := 0
	for _, r := range s.Resonators {
		total += r.ProducedCount
	}
	return total
}

// EverstoneHP returns the summed positive health of all everstones
func (s *Snapshot) EverstoneHP() float64 {
	total := 0.0
	for _, st := range s.Everstones {
		if st.HP > 0 {
			total += st.HP
		}
	}
	return total
}

// NextProduction returns the countdown to the resonator's next production, floored at zero
func (s *Snapshot) NextProduction(id int) (float64, bool) {
	for _, r := range s.Resonators {
		if r.ID == id {
			return max(0, r.ProduceTimer), true
		}
	}
	return 0, false
}

// ProductionElapsed returns wall time since the first Start, zero before it
func (s *Snapshot) ProductionElapsed(now time.Time) time.Duration {
	if s.ProductionStartedAt.IsZero() {
		return 0
	}
	return now.Sub(s.ProductionStartedAt)
}

// EncodeSnapshot writes s as msgpack
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	if err := msgpack.NewEncoder(w).Encode(s); err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	return nil
}

// DecodeSnapshot reads a msgpack snapshot
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return s, errors.Wrap(err, "decode snapshot")
	}
	return s, nil
}
