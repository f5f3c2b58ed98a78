package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/xid"
	"github.com/sarchlab/tlbsim/datarecording"
	"github.com/sarchlab/tlbsim/mem/trace"
	"github.com/sarchlab/tlbsim/mem/vm"
	"github.com/sarchlab/tlbsim/mem/vm/mmu"
	"github.com/sarchlab/tlbsim/mem/vm/tlb"
	"github.com/sarchlab/tlbsim/monitoring"
	"github.com/sarchlab/tlbsim/sim/hooking"
)

// Builder can be used to build a simulation.
type Builder struct {
	config       Config
	rng          *rand.Rand
	pageTable    vm.PageTable
	hooks        []hooking.Hook
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
}

// MakeBuilder creates a new builder with the default config.
func MakeBuilder() Builder {
	return Builder{
		config: DefaultConfig(),
	}
}

// WithConfig sets the address space and TLB size.
func (b Builder) WithConfig(c Config) Builder {
	b.config = c
	return b
}

// WithRand sets the random source that generates the page table. It takes
// precedence over the seed in the config.
func (b Builder) WithRand(rng *rand.Rand) Builder {
	b.rng = rng
	return b
}

// WithPageTable sets a fixed page table instead of a random one. The page
// table must cover the configured address space.
func (b Builder) WithPageTable(pageTable vm.PageTable) Builder {
	b.pageTable = pageTable
	return b
}

// WithHook attaches a hook to both the simulation and the MMU.
func (b Builder) WithHook(hook hooking.Hook) Builder {
	b.hooks = append(b.hooks[:len(b.hooks):len(b.hooks)], hook)
	return b
}

// WithDataRecorder records every translation into the given recorder.
func (b Builder) WithDataRecorder(dataRecorder datarecording.DataRecorder) Builder {
	b.dataRecorder = dataRecorder
	return b
}

// WithMonitor exposes the simulation through a monitor.
func (b Builder) WithMonitor(monitor *monitoring.Monitor) Builder {
	b.monitor = monitor
	return b
}

// Build builds the simulation. Invalid configurations return an error
// wrapping vm.ErrInvalidConfig.
func (b Builder) Build() (*Simulation, error) {
	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		id:           xid.New().String(),
		config:       b.config,
		dataRecorder: b.dataRecorder,
		monitor:      b.monitor,
	}

	pageTable, err := b.buildPageTable(s)
	if err != nil {
		return nil, err
	}

	s.tlb = tlb.MakeBuilder().
		WithNumWays(b.config.NumTLBEntries).
		Build("MMU.TLB")

	s.mmu = mmu.MakeBuilder().
		WithLog2PageSize(b.config.Log2PageSize).
		WithTLB(s.tlb).
		WithPageTable(pageTable).
		Build("MMU")

	b.attachHooks(s)
	b.registerToMonitor(s)

	return s, nil
}

func (b Builder) buildPageTable(s *Simulation) (vm.PageTable, error) {
	space := b.config.AddressSpace()

	if b.pageTable != nil {
		if b.pageTable.Log2PageSize() != space.Log2PageSize ||
			b.pageTable.NumEntries() != space.NumPages() {
			return nil, fmt.Errorf(
				"%w: page table has %d pages of 2^%d bytes, need %d of 2^%d",
				vm.ErrInvalidConfig,
				b.pageTable.NumEntries(), b.pageTable.Log2PageSize(),
				space.NumPages(), space.Log2PageSize)
		}

		return b.pageTable, nil
	}

	rng := b.rng
	if rng == nil {
		s.seed = b.config.Seed
		if s.seed == 0 {
			s.seed = time.Now().UnixNano()
		}

		rng = rand.New(rand.NewSource(s.seed))
	}

	return vm.NewRandomPageTable(space, rng)
}

func (b Builder) attachHooks(s *Simulation) {
	hooks := b.hooks
	if b.dataRecorder != nil {
		hooks = append(hooks[:len(hooks):len(hooks)],
			trace.NewDBTracer(b.dataRecorder))
	}

	for _, h := range hooks {
		s.AcceptHook(h)
		s.mmu.AcceptHook(h)
	}
}

func (b Builder) registerToMonitor(s *Simulation) {
	if b.monitor == nil {
		return
	}

	b.monitor.RegisterStateLock(&s.stateLock)
	b.monitor.RegisterComponent(s.mmu)
	b.monitor.RegisterComponent(s.tlb)
}
