package trace

import (
	"context"
	"log"

	"github.com/sarchlab/tlbsim/datarecording"
	"github.com/sarchlab/tlbsim/mem/vm/mmu"
	"github.com/sarchlab/tlbsim/sim/hooking"
)

// HookPosAccess marks the start of one trace access. The hook item is the
// Access. It is invoked by whoever replays the trace.
var HookPosAccess = &hooking.HookPos{Name: "Trace Access"}

// TranslationTable is the table that NewDBTracer writes to.
const TranslationTable = "translations"

// TranslationRecord represents one translation in the database
type TranslationRecord struct {
	Seq      uint64
	Location string
	Kind     string
	Outcome  string
	VAddr    uint64
	PAddr    uint64
	PageNum  uint64
	FrameNum uint64
}

// A logTracer is a hook that prints every translation to a logger.
type logTracer struct {
	logger *log.Logger
	kind   AccessKind
}

// NewLogTracer creates a hook that writes one line per translation:
// location, kind, outcome, virtual address, physical address, page, frame.
func NewLogTracer(logger *log.Logger) hooking.Hook {
	return &logTracer{logger: logger}
}

func (t *logTracer) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case HookPosAccess:
		t.kind = ctx.Item.(Access).Kind
	case mmu.HookPosTranslation:
		tr := ctx.Item.(mmu.Translation)
		t.logger.Printf("%s, %s, %s, 0x%x, 0x%x, %d, %d\n",
			ctx.Domain.Name(), t.kind, tr.Outcome,
			tr.VAddr, tr.PAddr, tr.PageNum, tr.FrameNum)
		t.kind = Unknown
	}
}

// A dbTracer is a hook that records every translation into a database
// using the data recorder.
type dbTracer struct {
	dataRecorder datarecording.DataRecorder
	seq          uint64
	kind         AccessKind
}

// NewDBTracer creates a hook that records translations into the
// "translations" table.
func NewDBTracer(dataRecorder datarecording.DataRecorder) hooking.Hook {
	t := &dbTracer{
		dataRecorder: dataRecorder,
	}

	t.dataRecorder.CreateTable(TranslationTable, TranslationRecord{})

	return t
}

func (t *dbTracer) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case HookPosAccess:
		t.kind = ctx.Item.(Access).Kind
	case mmu.HookPosTranslation:
		tr := ctx.Item.(mmu.Translation)

		t.dataRecorder.InsertData(TranslationTable, TranslationRecord{
			Seq:      t.seq,
			Location: ctx.Domain.Name(),
			Kind:     t.kind.String(),
			Outcome:  tr.Outcome.String(),
			VAddr:    tr.VAddr,
			PAddr:    tr.PAddr,
			PageNum:  tr.PageNum,
			FrameNum: tr.FrameNum,
		})

		t.seq++
		t.kind = Unknown
	}
}

// ReadTranslations reads back the translations recorded by a DBTracer.
func ReadTranslations(
	ctx context.Context,
	reader datarecording.DataReader,
	params datarecording.QueryParams,
) ([]TranslationRecord, error) {
	reader.MapTable(TranslationTable, TranslationRecord{})

	if params.OrderBy == "" {
		params.OrderBy = "Seq"
	}

	rows, err := reader.Query(ctx, TranslationTable, params)
	if err != nil {
		return nil, err
	}

	records := make([]TranslationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.(TranslationRecord))
	}

	return records, nil
}
