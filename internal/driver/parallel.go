package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"larch/internal/diag"
	"larch/internal/lexer"
	"larch/internal/parser"
	"larch/internal/source"
	"larch/internal/symbols"
)

// SourceExt is the file extension of source files.
const SourceExt = ".lh"

// Options configures a directory run.
type Options struct {
	// MaxErrors caps the aggregated error bag. Zero means 64.
	MaxErrors int
	// Jobs caps worker parallelism. Zero or negative means GOMAXPROCS.
	Jobs int
	// Observer, if set, receives per-file stage events.
	Observer Observer
	// Cache, if set, is consulted by content digest before checking a file
	// and updated after a successful check. Cached hits carry the symbol
	// table but not the semantic forms.
	Cache *DiskCache
}

// FileResult is the outcome for one file of a directory run.
type FileResult struct {
	Path      string
	Result    *CheckResult
	FromCache bool
	Err       *diag.Error
}

// ListSourceFiles returns the sorted relative paths of all source files
// under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir runs the front end over every source file under dir in parallel.
// Each file is an independent unit with its own token stream and symbol
// table; per-file failures land in the bag while the run continues. The
// returned error is reserved for cancellation and directory walking.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, *symbols.Global, *diag.Bag, error) {
	maxErrors := opts.MaxErrors
	if maxErrors <= 0 {
		maxErrors = 64
	}
	bag := diag.NewBag(maxErrors)
	global := symbols.NewGlobal()
	fileSet := source.NewFileSetWithBase(dir)

	files, err := ListSourceFiles(dir)
	if err != nil {
		return fileSet, nil, global, bag, err
	}
	if len(files) == 0 {
		return fileSet, nil, global, bag, nil
	}

	// The FileSet is not safe for concurrent mutation; load everything up
	// front and let the workers read.
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		if _, err := fileSet.Load(path); err != nil {
			loadErrors[path] = err
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	var observeMu sync.Mutex
	observe := func(ev Event) {
		if opts.Observer == nil {
			return
		}
		observeMu.Lock()
		defer observeMu.Unlock()
		opts.Observer(ev)
	}

	// Index-per-worker result slots; no locking needed.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				ioErr := diag.IO(path, loadErr)
				results[i] = FileResult{Path: path, Err: ioErr}
				observe(Event{Path: path, Stage: StageLoad, Err: ioErr})
				return nil
			}
			observe(Event{Path: path, Stage: StageLoad})

			file, _ := fileSet.GetByPath(path)

			if opts.Cache != nil {
				if table, hit, cacheErr := opts.Cache.Get(file.Hash); cacheErr == nil && hit {
					// Entries are keyed by content, so a hit may have been
					// written by a different file with the same bytes.
					results[i] = FileResult{
						Path:      path,
						Result:    &CheckResult{Path: path, Table: table.ForFile(path)},
						FromCache: true,
					}
					observe(Event{Path: path, Stage: StageCheck})
					return nil
				}
			}

			stream, lexErr := lexer.NewFromFile(file).Lex()
			if lexErr != nil {
				results[i] = FileResult{Path: path, Err: lexErr}
				observe(Event{Path: path, Stage: StageLex, Err: lexErr})
				return nil
			}
			observe(Event{Path: path, Stage: StageLex})

			forms, parseErr := parser.ParseUnit(stream.FilterTrivia())
			if parseErr != nil {
				results[i] = FileResult{Path: path, Err: parseErr}
				observe(Event{Path: path, Stage: StageParse, Err: parseErr})
				return nil
			}
			observe(Event{Path: path, Stage: StageParse})

			result, checkErr := checkForms(path, forms)
			if checkErr != nil {
				results[i] = FileResult{Path: path, Err: checkErr}
				observe(Event{Path: path, Stage: StageCheck, Err: checkErr})
				return nil
			}
			observe(Event{Path: path, Stage: StageCheck})

			if opts.Cache != nil {
				// Best effort; a failed write never fails the run.
				_ = opts.Cache.Put(file.Hash, result.Table)
			}
			results[i] = FileResult{Path: path, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, global, bag, err
	}

	for _, r := range results {
		if r.Err != nil {
			bag.Add(r.Err)
			continue
		}
		global.Add(r.Result.Table)
	}
	bag.Sort()
	return fileSet, results, global, bag, nil
}
