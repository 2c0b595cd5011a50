package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/txtar"
)

// Writer writes generated documents to a directory with parallel execution.
type Writer struct {
	outDir  string
	workers int

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks write performance.
type WriterMetrics struct {
	FilesWritten int
	TotalBytes   int64
	WriteTime    int64 // nanoseconds
}

// NewWriter creates a writer for the given output directory.
func NewWriter(outDir string) *Writer {
	return &Writer{
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
		metrics: &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns a snapshot of the write metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.metrics
}

// Write writes the documents of all results in parallel. It returns the
// written paths in write order.
func (w *Writer) Write(ctx context.Context, results ...*Result) ([]string, error) {
	if w.outDir == "" {
		return nil, NewConfigError("Output", nil, "missing output directory")
	}
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	docs := documents(results)
	paths := make([]string, len(docs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for i, d := range docs {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			path, err := w.writeFile(d)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// writeFile writes a single document.
func (w *Writer) writeFile(d *Document) (string, error) {
	start := time.Now()
	path := filepath.Join(w.outDir, d.Name)
	buf := d.Bytes()
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", d.Name, err)
	}

	// Update metrics
	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(buf))
	w.metrics.WriteTime += int64(time.Since(start))
	w.mu.Unlock()

	return path, nil
}

// Archive bundles the documents of all results into a txtar archive, one
// file per document. Documents keep their emission order; results are
// sorted by class name.
func Archive(results ...*Result) *txtar.Archive {
	a := &txtar.Archive{}
	for _, d := range documents(results) {
		a.Files = append(a.Files, txtar.File{Name: d.Name, Data: d.Bytes()})
	}
	return a
}

// documents flattens the results into a deterministic document list.
func documents(results []*Result) []*Document {
	sorted := make([]*Result, 0, len(results))
	for _, r := range results {
		if r != nil {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Class < sorted[j].Class })
	var docs []*Document
	for _, r := range sorted {
		docs = append(docs, r.Documents()...)
	}
	return docs
}
