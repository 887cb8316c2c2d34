package protein

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// Service orchestrates validation, the property analyzers and the
// function predictor. The embedder and reference table are injected at
// construction; the table is read-only afterwards, so analyses from
// concurrent requests share it safely.
type Service struct {
	embedder Embedder
	table    *ReferenceTable

	cfgMu sync.RWMutex
	cfg   Config

	logger *log.Logger
}

// NewService constructs a service with the given embedder, reference
// table and configuration. An empty reference table is a configuration
// error and fails construction.
func NewService(embedder Embedder, table *ReferenceTable, cfg Config, logger *log.Logger) (*Service, error) {
	if embedder == nil {
		return nil, errors.New("embedder is required")
	}
	if table.Len() == 0 {
		return nil, &EmptyReferenceTableError{}
	}
	cfg.ApplyDefaults()
	s := &Service{
		embedder: embedder,
		table:    table,
		cfg:      cfg,
		logger:   logger,
	}
	s.logf("Reference table loaded with %d functions", table.Len())
	return s, nil
}

// Config returns a copy of the current configuration.
func (s *Service) Config() Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg.Clone()
}

// UpdateConfig replaces the configuration.
func (s *Service) UpdateConfig(cfg Config) {
	cfg.ApplyDefaults()
	s.cfgMu.Lock()
	s.cfg = cfg
	s.cfgMu.Unlock()
}

// Labels returns the reference table's known function labels, for
// display purposes.
func (s *Service) Labels() []string {
	return s.table.Labels()
}

// AnalyzeFull runs every analyzer on the sequence and assembles the
// complete result. Either the full result is returned or an error;
// there are no partial results.
func (s *Service) AnalyzeFull(seq Sequence) (AnalysisResult, error) {
	profile, err := AnalyzeHydrophobicity(seq)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("hydrophobicity: %w", err)
	}
	structure, err := PredictStructure(seq)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("secondary structure: %w", err)
	}
	embedding, err := s.embedder.Embed(seq)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("embed sequence: %w", err)
	}
	function, err := PredictFunction(embedding, s.table)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("predict function: %w", err)
	}
	return AnalysisResult{
		Sequence:       seq,
		Hydrophobicity: profile,
		Structure:      structure,
		Function:       function,
		Domains:        ScanDomains(seq),
		Composition:    AnalyzeComposition(seq),
	}, nil
}

// Compare analyzes both sequences independently and reports the
// aggregate-level differences. The sequences do not have to be the
// same length; per-position diffs are never computed.
func (s *Service) Compare(original, mutated Sequence) (MutationDelta, error) {
	origRes, err := s.AnalyzeFull(original)
	if err != nil {
		return MutationDelta{}, fmt.Errorf("analyze original: %w", err)
	}
	mutRes, err := s.AnalyzeFull(mutated)
	if err != nil {
		return MutationDelta{}, fmt.Errorf("analyze mutated: %w", err)
	}
	return MutationDelta{
		Original:            origRes,
		Mutated:             mutRes,
		HydrophobicityDelta: mutRes.Hydrophobicity.Mean - origRes.Hydrophobicity.Mean,
		StructureDelta: StructureDelta{
			Helix: mutRes.Structure.Helix - origRes.Structure.Helix,
			Sheet: mutRes.Structure.Sheet - origRes.Structure.Sheet,
			Coil:  mutRes.Structure.Coil - origRes.Structure.Coil,
		},
		FunctionChanged:    origRes.Function.Label != mutRes.Function.Label,
		OriginalFunction:   origRes.Function.Label,
		MutatedFunction:    mutRes.Function.Label,
		OriginalConfidence: origRes.Function.Confidence,
		MutatedConfidence:  mutRes.Function.Confidence,
	}, nil
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
