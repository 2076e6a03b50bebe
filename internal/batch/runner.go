package batch

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/saleemayman/carpet-invoices/internal/model"
	"github.com/saleemayman/carpet-invoices/internal/parser"
	"github.com/saleemayman/carpet-invoices/internal/pdftext"
)

const defaultWorkers = 4

// Result is the outcome for a single file. Exactly one of Doc and Err is
// set; a failed file never aborts the rest of the batch.
type Result struct {
	Folder string // folder key, e.g. "202101/RE"
	File   string // filename inside the folder
	Path   string // full path on disk
	Doc    *model.ParsedDocument
	Err    error
}

// Runner parses every PDF under a document root using a fixed-size worker
// pool. Parser and extractor are shared across workers; both are safe for
// concurrent use.
type Runner struct {
	parser    *parser.Parser
	extractor *pdftext.Extractor
	workers   int
}

// NewRunner builds a Runner. workers <= 0 selects the default pool size.
func NewRunner(p *parser.Parser, e *pdftext.Extractor, workers int) *Runner {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Runner{parser: p, extractor: e, workers: workers}
}

type fileJob struct {
	folder SourceFolder
	name   string
}

// Run discovers and parses all documents under root. Results come back
// sorted by folder and filename regardless of worker scheduling. The only
// error returns are directory listing failures and context cancellation;
// per-file failures are reported inside the results.
func (r *Runner) Run(ctx context.Context, root string) ([]Result, error) {
	folders, err := Discover(root)
	if err != nil {
		return nil, err
	}

	var jobs []fileJob
	for _, folder := range folders {
		names, err := ListPDFs(folder.Path)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			jobs = append(jobs, fileJob{folder: folder, name: name})
		}
	}

	jobsChan := make(chan fileJob)
	resultsChan := make(chan Result, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go r.worker(ctx, jobsChan, resultsChan, &wg)
	}

dispatch:
	for _, job := range jobs {
		select {
		case <-ctx.Done():
			break dispatch
		case jobsChan <- job:
		}
	}
	close(jobsChan)
	wg.Wait()
	close(resultsChan)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(jobs))
	for res := range resultsChan {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Folder != results[j].Folder {
			return results[i].Folder < results[j].Folder
		}
		return results[i].File < results[j].File
	})
	return results, nil
}

func (r *Runner) worker(ctx context.Context, jobs <-chan fileJob, results chan<- Result, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}
		results <- r.processFile(job)
	}
}

func (r *Runner) processFile(job fileJob) Result {
	res := Result{
		Folder: job.folder.Rel,
		File:   job.name,
		Path:   filepath.Join(job.folder.Path, job.name),
	}

	lines, err := r.extractor.ExtractLines(res.Path)
	if err != nil {
		res.Err = err
		return res
	}

	doc, err := r.parser.Parse(lines, job.name, job.folder.Rel)
	if err != nil {
		res.Err = err
		return res
	}
	res.Doc = doc
	return res
}
