package recon

import (
	"context"
	"strings"

	"github.com/opsdesk/loareturn/internal/logging"
	"github.com/opsdesk/loareturn/internal/sniff"
	"github.com/opsdesk/loareturn/internal/table"
)

// Phase names a pipeline stage.
type Phase string

const (
	PhaseReadingSales    Phase = "reading_sales"
	PhaseFilteringActive Phase = "filtering_active"
	PhaseReadingPeople   Phase = "reading_people"
	PhaseFilteringLOA    Phase = "filtering_loa"
	PhaseWriting         Phase = "writing"
	PhaseDone            Phase = "done"
	PhaseFailed          Phase = "failed"
)

// salesHeaderSkip is the number of banner rows above the sales report's
// real header row. The people file has none.
const salesHeaderSkip = 3

// Progress is a checkpoint event. Percentages are fixed per stage, not
// derived from row counts.
type Progress struct {
	Phase   Phase
	Percent int
	Message string
}

// checkpoints holds the fixed (percent, message) pair for each stage.
var checkpoints = map[Phase]Progress{
	PhaseReadingSales:    {PhaseReadingSales, 5, "Reading sales compensation report"},
	PhaseFilteringActive: {PhaseFilteringActive, 25, "Filtering active employees"},
	PhaseReadingPeople:   {PhaseReadingPeople, 45, "Reading people file"},
	PhaseFilteringLOA:    {PhaseFilteringLOA, 65, "Selecting employees on leave"},
	PhaseWriting:         {PhaseWriting, 85, "Writing LOA return update"},
	PhaseDone:            {PhaseDone, 100, "Done"},
}

// Request describes one pipeline run.
type Request struct {
	SalesPath  string
	PeoplePath string
	OutputDir  string

	// Projection selects the output schema. Zero value means
	// ReturnUpdateWithTermination.
	Projection Projection

	// OnProgress, when set, receives each checkpoint synchronously.
	OnProgress func(Progress)
}

// Result is the outcome of a successful run.
type Result struct {
	OutputPath string
	RowCount   int
}

// Run executes the pipeline synchronously: read sales, derive the active
// identifier set, read people, compute the selection mask, project, write.
// Any stage error aborts the run; the writer is the final stage, so a
// failed run leaves no output file behind.
func Run(ctx context.Context, req Request) (Result, error) {
	if err := req.validate(); err != nil {
		return Result{}, err
	}
	proj := req.Projection
	if len(proj.Columns) == 0 {
		proj = ReturnUpdateWithTermination
	}

	logger := logging.FromContext(ctx)

	req.emit(PhaseReadingSales)
	sales, err := table.Read(req.SalesPath, sniff.Classify(req.SalesPath), salesHeaderSkip)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("sales report loaded", "rows", sales.RowCount(), "columns", sales.ColumnCount())

	req.emit(PhaseFilteringActive)
	active, err := ActiveIdentifierSet(sales)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("active identifier set built", "size", len(active))

	req.emit(PhaseReadingPeople)
	people, err := table.Read(req.PeoplePath, sniff.Classify(req.PeoplePath), 0)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("people file loaded", "rows", people.RowCount(), "columns", people.ColumnCount())

	req.emit(PhaseFilteringLOA)
	mask, err := SelectionMask(people, active)
	if err != nil {
		return Result{}, err
	}
	out := Project(people, mask, proj)

	req.emit(PhaseWriting)
	path, err := table.WriteWorkbook(out, req.OutputDir)
	if err != nil {
		return Result{}, err
	}

	req.emit(PhaseDone)
	logger.Info("reconciliation complete", "output", path, "rows", out.RowCount(), "projection", proj.Name)
	return Result{OutputPath: path, RowCount: out.RowCount()}, nil
}

func (req Request) validate() error {
	if strings.TrimSpace(req.SalesPath) == "" ||
		strings.TrimSpace(req.PeoplePath) == "" ||
		strings.TrimSpace(req.OutputDir) == "" {
		return ErrMissingInput
	}
	return nil
}

func (req Request) emit(phase Phase) {
	if req.OnProgress != nil {
		req.OnProgress(checkpoints[phase])
	}
}

// Event is one message from an asynchronous run: either a checkpoint
// (Progress set) or the single terminal message (Result or Err set).
type Event struct {
	Progress *Progress
	Result   *Result
	Err      error
}

// Terminal reports whether this is the run's final event.
func (e Event) Terminal() bool {
	return e.Progress == nil
}

// Go runs the pipeline on a worker goroutine and returns an ordered event
// channel: one event per checkpoint, then exactly one terminal event, then
// close. The channel is buffered for every message a run can emit, so
// the worker never blocks on a slow consumer. There is no mid-run
// cancellation; a run either completes or fails.
func Go(ctx context.Context, req Request) <-chan Event {
	events := make(chan Event, len(checkpoints)+1)

	userProgress := req.OnProgress
	req.OnProgress = func(p Progress) {
		events <- Event{Progress: &p}
		if userProgress != nil {
			userProgress(p)
		}
	}

	go func() {
		defer close(events)
		result, err := Run(ctx, req)
		if err != nil {
			events <- Event{Err: err}
			return
		}
		events <- Event{Result: &result}
	}()

	return events
}
