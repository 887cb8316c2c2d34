package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"protlens/protein"
)

type cliOptions struct {
	configPath    string
	referencePath string
	seq           string
	seqFile       string
	mutated       string
	mutatedFile   string
	asJSON        bool
	listLabels    bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("protlens: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("protlens: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "", "Path to config.json (default: ./config.json)")
	flag.StringVar(&opts.referencePath, "reference", "", "TOML reference-table file (default: built-in table)")
	flag.StringVar(&opts.seq, "seq", "", "Protein sequence to analyze")
	flag.StringVar(&opts.seqFile, "seq-file", "", "File containing the sequence to analyze")
	flag.StringVar(&opts.mutated, "mutated", "", "Mutated sequence to compare against --seq")
	flag.StringVar(&opts.mutatedFile, "mutated-file", "", "File containing the mutated sequence")
	flag.BoolVar(&opts.asJSON, "json", false, "Print results as JSON")
	flag.BoolVar(&opts.listLabels, "labels", false, "Print the known function labels and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --seq SEQUENCE [--mutated SEQUENCE] [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.configPath = strings.TrimSpace(opts.configPath)
	opts.referencePath = strings.TrimSpace(opts.referencePath)
	opts.seqFile = strings.TrimSpace(opts.seqFile)
	opts.mutatedFile = strings.TrimSpace(opts.mutatedFile)

	if !opts.listLabels && opts.seq == "" && opts.seqFile == "" {
		flag.Usage()
		return opts, errors.New("missing required --seq or --seq-file")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	cfg, err := protein.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.referencePath != "" {
		cfg.ReferencePath = opts.referencePath
	}

	embedder := protein.NewCompositionEmbedder(time.Duration(cfg.CacheTTLMinutes) * time.Minute)

	table, err := loadTable(cfg, embedder)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	service, err := protein.NewService(embedder, table, cfg, logger)
	if err != nil {
		return fmt.Errorf("init service: %w", err)
	}

	if opts.listLabels {
		for _, label := range service.Labels() {
			fmt.Println(label)
		}
		return nil
	}

	raw, err := readSequence(opts.seq, opts.seqFile)
	if err != nil {
		return err
	}
	seq, err := protein.Validate(raw)
	if err != nil {
		return fmt.Errorf("validate sequence: %w", err)
	}

	rawMutated, err := readSequence(opts.mutated, opts.mutatedFile)
	if err != nil {
		return err
	}
	if rawMutated == "" {
		result, err := service.AnalyzeFull(seq)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		return printAnalysis(result, cfg, opts.asJSON)
	}

	mutated, err := protein.Validate(rawMutated)
	if err != nil {
		return fmt.Errorf("validate mutated sequence: %w", err)
	}
	delta, err := service.Compare(seq, mutated)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}
	return printDelta(delta, cfg, opts.asJSON)
}

func loadTable(cfg protein.Config, embedder protein.Embedder) (*protein.ReferenceTable, error) {
	if cfg.ReferencePath != "" {
		table, err := protein.LoadReferenceTable(cfg.ReferencePath)
		if err != nil {
			return nil, fmt.Errorf("load reference table: %w", err)
		}
		return table, nil
	}
	entries, err := protein.DefaultReferenceEntries(embedder)
	if err != nil {
		return nil, fmt.Errorf("build default reference table: %w", err)
	}
	return protein.NewReferenceTable(entries), nil
}

func readSequence(inline, path string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read sequence file: %w", err)
	}
	return string(data), nil
}

func printAnalysis(result protein.AnalysisResult, cfg protein.Config, asJSON bool) error {
	if asJSON {
		return printJSON(result)
	}
	fmt.Printf("Sequence (%d residues): %s\n", result.Sequence.Len(), abbreviate(result.Sequence.String()))
	fmt.Printf("Mean hydrophobicity: %+.2f (Kyte-Doolittle)\n", result.Hydrophobicity.Mean)
	fmt.Printf("Secondary structure: helix %.1f%%  sheet %.1f%%  coil %.1f%%\n",
		result.Structure.Helix*100, result.Structure.Sheet*100, result.Structure.Coil*100)
	fmt.Printf("Composition: hydrophobic %.1f%%  polar %.1f%%  charged %.1f%%\n",
		result.Composition.Hydrophobic*100, result.Composition.Polar*100, result.Composition.Charged*100)

	fmt.Printf("Predicted function: %s (confidence %.3f)\n", result.Function.Label, result.Function.Confidence)
	limit := cfg.TopK
	if len(result.Function.Candidates) < limit {
		limit = len(result.Function.Candidates)
	}
	for i := 0; i < limit; i++ {
		c := result.Function.Candidates[i]
		fmt.Printf("  %d. %s (similarity %.3f)\n", c.Rank, c.Label, c.Similarity)
	}

	fmt.Println("Domains:")
	for _, d := range result.Domains {
		fmt.Printf("  %s (%d-%d, score %.1f): %s\n", d.Name, d.Start, d.End, d.Score, d.Description)
	}
	return nil
}

func printDelta(delta protein.MutationDelta, cfg protein.Config, asJSON bool) error {
	if asJSON {
		return printJSON(delta)
	}
	if err := printAnalysis(delta.Original, cfg, false); err != nil {
		return err
	}
	fmt.Println()
	if err := printAnalysis(delta.Mutated, cfg, false); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("==== Mutation impact ====")
	fmt.Printf("Hydrophobicity delta: %+.3f\n", delta.HydrophobicityDelta)
	fmt.Printf("Structure delta: helix %+.1f%%  sheet %+.1f%%  coil %+.1f%%\n",
		delta.StructureDelta.Helix*100, delta.StructureDelta.Sheet*100, delta.StructureDelta.Coil*100)
	if delta.FunctionChanged {
		fmt.Printf("Function changed: %s (%.3f) -> %s (%.3f)\n",
			delta.OriginalFunction, delta.OriginalConfidence,
			delta.MutatedFunction, delta.MutatedConfidence)
	} else {
		fmt.Printf("Function unchanged: %s (%.3f -> %.3f)\n",
			delta.OriginalFunction, delta.OriginalConfidence, delta.MutatedConfidence)
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func abbreviate(s string) string {
	if len(s) <= 60 {
		return s
	}
	return s[:60] + "..."
}
