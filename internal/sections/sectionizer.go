package sections

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"sectionizer/internal/bktree"
	"sectionizer/internal/frames"
	"sectionizer/internal/logging"
)

// Params holds the matching and clustering tuning for one categorize run.
type Params struct {
	// Radius is the maximum Hamming distance for a frame match, in bits.
	Radius int
	// MaxGapSeconds is the largest gap bridged inside one section.
	MaxGapSeconds int
	// MinDurationSeconds drops sections at or below this length.
	MinDurationSeconds int
	// FPS is the decode sampling rate both sequences were extracted at.
	FPS int
}

// Result carries the section list computed for one input file.
type Result struct {
	Target   string
	Sections []Section
}

// Sectionizer coordinates extraction, matching, and clustering for a pair of
// files.
type Sectionizer struct {
	source frames.Source
	logger *slog.Logger
	params Params
}

// New constructs a Sectionizer. A nil logger disables diagnostics without
// affecting results.
func New(source frames.Source, logger *slog.Logger, params Params) *Sectionizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Sectionizer{
		source: source,
		logger: logger.With(logging.FieldComponent, "sectionizer"),
		params: params,
	}
}

// Categorize extracts both files concurrently, matches each sequence against
// the other's index, and returns one section list per file, in argument
// order. Either extraction failing fails the whole call; no partial result is
// returned.
func (s *Sectionizer) Categorize(ctx context.Context, fileA, fileB string) (Result, Result, error) {
	if s.params.FPS <= 0 {
		return Result{}, Result{}, fmt.Errorf("categorize: fps must be positive, got %d", s.params.FPS)
	}

	var (
		wg         sync.WaitGroup
		seqA, seqB []frames.Frame
		errA, errB error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		seqA, errA = s.source.Extract(ctx, fileA)
	}()
	go func() {
		defer wg.Done()
		seqB, errB = s.source.Extract(ctx, fileB)
	}()
	wg.Wait()

	if errA != nil {
		return Result{}, Result{}, fmt.Errorf("extract %s: %w", fileA, errA)
	}
	if errB != nil {
		return Result{}, Result{}, fmt.Errorf("extract %s: %w", fileB, errB)
	}

	s.logger.Debug("extraction finished",
		logging.FieldSource, fileA,
		logging.FieldFrameCount, len(seqA),
	)
	s.logger.Debug("extraction finished",
		logging.FieldSource, fileB,
		logging.FieldFrameCount, len(seqB),
	)

	treeA := bktree.New[frames.Frame](frames.Hamming{})
	treeA.InsertAll(seqA)
	treeB := bktree.New[frames.Frame](frames.Hamming{})
	treeB.InsertAll(seqB)

	resultA := s.sectionize(fileA, seqA, treeB)
	resultB := s.sectionize(fileB, seqB, treeA)
	return resultA, resultB, nil
}

// sectionize runs one match direction: the sequence's own frames against the
// other file's index, clustered into that file's timeline.
func (s *Sectionizer) sectionize(target string, queried []frames.Frame, index *bktree.Tree[frames.Frame]) Result {
	pairs := MatchSequence(queried, index, s.params.Radius)
	found := Cluster(pairs, s.params.FPS, s.params.MaxGapSeconds, s.params.MinDurationSeconds)
	s.logger.Debug("sectionize complete",
		logging.FieldSource, target,
		logging.FieldMatchCount, len(pairs),
		logging.FieldSectionCount, len(found),
	)
	return Result{Target: target, Sections: found}
}
