package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	gongwen "github.com/hanchen-dev/go-gongwen"
	"github.com/hanchen-dev/go-gongwen/internal/config"
	"github.com/hanchen-dev/go-gongwen/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadInput          = errors.New("failed to read input file")
	ErrReadBodyFile       = errors.New("failed to read body file")
	ErrWriteDocx          = errors.New("failed to write docx file")
	ErrInvalidExtension   = errors.New("file must have .md, .markdown, .json, .yaml, or .yml extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// defaultOutputName is used for flag-only invocations without --output.
const defaultOutputName = "公文.docx"

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input gongwen.Input) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Converter = (*gongwen.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() Converter
	Release(Converter)
	Size() int
}

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	if flags.common.verbose {
		warnUnknownEnvVars(env.Stderr)
	}

	// Load configuration: flag > env var > none
	cfg := config.DefaultConfig()
	cfgPath := flags.common.config
	if cfgPath == "" {
		cfgPath = envCfg.ConfigPath
	}
	if cfgPath != "" {
		cfg, err = config.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound())
		}
	}
	applyEnvConfig(envCfg, cfg)

	overrides, err := buildOverrides(&flags.overrides)
	if err != nil {
		return err
	}
	defaults := buildDefaults(cfg)
	opts := buildServiceOptions(cfg, env)

	// Flag-only mode: no input path anywhere, document built from flags.
	if len(positional) == 0 && cfg.Input.DefaultDir == "" {
		if overrides == nil {
			return ErrNoInput
		}
		return convertFlagDocument(ctx, flags, overrides, defaults, opts, env)
	}

	inputPath := resolveInputPath(positional, cfg)
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no convertible files found in %s", inputPath)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	pool := NewServicePool(resolvePoolSize(workers), opts...)

	results := convertBatch(ctx, pool, files, overrides, defaults)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// buildServiceOptions maps config font overrides onto a layout.
func buildServiceOptions(cfg *config.Config, env *Environment) []gongwen.Option {
	layout := gongwen.DefaultLayout()
	if cfg.Fonts.Title != "" {
		layout.TitleFont = cfg.Fonts.Title
	}
	if cfg.Fonts.Heading != "" {
		layout.HeadingFont = cfg.Fonts.Heading
	}
	if cfg.Fonts.Subheading != "" {
		layout.SubheadingFont = cfg.Fonts.Subheading
	}
	if cfg.Fonts.Body != "" {
		layout.BodyFont = cfg.Fonts.Body
	}
	if cfg.Fonts.PageNumber != "" {
		layout.PageNumberFont = cfg.Fonts.PageNumber
	}

	return []gongwen.Option{
		gongwen.WithLayout(layout),
		gongwen.WithClock(env.Now),
	}
}

// buildOverrides converts override flags into library overrides.
// Returns nil when no override flag was given.
func buildOverrides(f *overrideFlags) (*gongwen.Overrides, error) {
	body, err := resolveBodyLines(f)
	if err != nil {
		return nil, err
	}

	o := &gongwen.Overrides{
		Title:       f.title,
		Recipients:  splitRecipients(f.recipients),
		Body:        body,
		Attachments: f.attachments,
		Signer:      f.signer,
		Date:        f.date,
	}
	if o.Title == "" && len(o.Recipients) == 0 && len(o.Body) == 0 &&
		len(o.Attachments) == 0 && o.Signer == "" && o.Date == "" {
		return nil, nil
	}
	return o, nil
}

// buildDefaults converts config issuer fields into library defaults.
func buildDefaults(cfg *config.Config) *gongwen.Overrides {
	if cfg.Issuer.Signer == "" && cfg.Issuer.Date == "" {
		return nil
	}
	return &gongwen.Overrides{
		Signer: cfg.Issuer.Signer,
		Date:   cfg.Issuer.Date,
	}
}

// resolveBodyLines reads body paragraphs from --body or --body-file.
func resolveBodyLines(f *overrideFlags) ([]string, error) {
	text := f.body
	if f.bodyFile != "" {
		content, err := os.ReadFile(f.bodyFile) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadBodyFile, err)
		}
		text = string(content)
	}
	if text == "" {
		return nil, nil
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines, nil
}

// splitRecipients splits a recipient flag on 、 and ASCII/fullwidth commas.
func splitRecipients(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '、' || r == ',' || r == '，'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// convertFlagDocument renders a document described entirely by flags.
func convertFlagDocument(ctx context.Context, flags *convertFlags, overrides, defaults *gongwen.Overrides, opts []gongwen.Option, env *Environment) error {
	spec := &gongwen.DocumentSpec{
		Title:       overrides.Title,
		Recipients:  overrides.Recipients,
		Body:        overrides.Body,
		Attachments: overrides.Attachments,
		Signer:      overrides.Signer,
		Date:        overrides.Date,
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultOutputName
	}

	svc := gongwen.New(opts...)
	out, err := svc.Convert(ctx, gongwen.Input{Spec: spec, Defaults: defaults})
	if err != nil {
		return err
	}

	// #nosec G306 -- documents are meant to be readable
	if err := os.WriteFile(outputPath, out, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocx, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Input.DefaultDir
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// supportedExtension reports whether the file extension is convertible.
func supportedExtension(ext string) bool {
	switch ext {
	case ".md", ".markdown", ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// discoverFiles finds all convertible files under inputPath.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !supportedExtension(filepath.Ext(inputPath)) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !supportedExtension(filepath.Ext(path)) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the .docx output path for an input file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".docx")
	}

	if strings.HasSuffix(outputDir, ".docx") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+".docx")
		}
	}

	return filepath.Join(outputDir, base+".docx")
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxPoolSize)
	}
	return nil
}

// convertBatch processes files concurrently using the service pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, overrides, defaults *gongwen.Overrides) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, svc, files[idx], overrides, defaults)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, service Converter, f FileToConvert, overrides, defaults *gongwen.Overrides) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		result.Duration = time.Since(start)
		return result
	}

	input := gongwen.Input{Overrides: overrides, Defaults: defaults}
	switch filepath.Ext(f.InputPath) {
	case ".json":
		input.Spec, err = gongwen.ParseSpecJSON(content)
	case ".yaml", ".yml":
		input.Spec, err = gongwen.ParseSpecYAML(content)
	default:
		input.Markdown = string(content)
	}
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
		result.Duration = time.Since(start)
		return result
	}

	docxBytes, err := service.Convert(ctx, input)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- documents are meant to be readable
	if err := os.WriteFile(f.OutputPath, docxBytes, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteDocx, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// printResults outputs conversion results using the environment writers.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
