// Package simulation replays memory traces through an MMU and summarizes how
// the TLB performed.
package simulation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sarchlab/tlbsim/datarecording"
	"github.com/sarchlab/tlbsim/mem/trace"
	"github.com/sarchlab/tlbsim/mem/vm/mmu"
	"github.com/sarchlab/tlbsim/mem/vm/tlb"
	"github.com/sarchlab/tlbsim/monitoring"
	"github.com/sarchlab/tlbsim/sim/hooking"
)

// ErrEmptyTrace is returned by Run when there is nothing to translate, as
// the hit and miss rates would be undefined.
var ErrEmptyTrace = errors.New("trace has no accesses")

// A Simulation owns one MMU and replays traces through it.
type Simulation struct {
	hooking.HookableBase

	id     string
	config Config
	seed   int64

	stateLock sync.Mutex
	mmu       *mmu.Comp
	tlb       *tlb.Comp

	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
}

// Name returns the name of the simulation.
func (s *Simulation) Name() string {
	return "Simulation"
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config {
	return s.config
}

// Seed returns the seed that generated the page table. It is 0 when the
// page table was given or generated from an injected random source.
func (s *Simulation) Seed() int64 {
	return s.seed
}

// MMU returns the translation unit.
func (s *Simulation) MMU() *mmu.Comp {
	return s.mmu
}

// TLB returns the TLB of the translation unit.
func (s *Simulation) TLB() *tlb.Comp {
	return s.tlb
}

// Run translates every access of the trace in order and counts hits and
// misses. The TLB starts empty on every run while the page table is kept. An
// address outside the address space aborts the run and no result is
// returned.
func (s *Simulation) Run(tr *trace.Trace) (Result, error) {
	if tr.Len() == 0 {
		return Result{}, ErrEmptyTrace
	}

	s.stateLock.Lock()
	s.tlb.Reset()
	s.stateLock.Unlock()

	var bar *monitoring.ProgressBar
	if s.monitor != nil {
		bar = s.monitor.CreateProgressBar("Trace "+s.id, uint64(tr.Len()))
		defer s.monitor.CompleteProgressBar(bar)
	}

	var hits, misses, reads, writes uint64

	err := tr.Each(func(i int, a trace.Access) error {
		s.InvokeHook(hooking.HookCtx{
			Domain: s,
			Pos:    trace.HookPosAccess,
			Item:   a,
		})

		t, err := s.translate(a.Address)
		if err != nil {
			return fmt.Errorf("access %d: %w", i, err)
		}

		switch t.Outcome {
		case mmu.Hit:
			hits++
		case mmu.Miss:
			misses++
		}

		switch a.Kind {
		case trace.Read:
			reads++
		case trace.Write:
			writes++
		}

		if bar != nil {
			bar.IncrementFinished(1)
		}

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if s.dataRecorder != nil {
		s.dataRecorder.Flush()
	}

	r := newResult(hits, misses, reads, writes)

	if s.monitor != nil {
		s.monitor.ReportResult(r)
	}

	return r, nil
}

func (s *Simulation) translate(vAddr uint64) (mmu.Translation, error) {
	s.stateLock.Lock()
	defer s.stateLock.Unlock()

	return s.mmu.Translate(vAddr)
}

// Terminate closes the data recorder, if any.
func (s *Simulation) Terminate() error {
	if s.dataRecorder == nil {
		return nil
	}

	return s.dataRecorder.Close()
}
