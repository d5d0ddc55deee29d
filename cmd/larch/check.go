package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"larch/internal/diag"
	"larch/internal/driver"
	"larch/internal/source"
	"larch/internal/symbols"
	"larch/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.lh | dir]",
	Short: "Run the full front end over a file or directory",
	Long: `Check tokenizes, parses, and validates larch sources, building a symbol
table per file. Without an argument the source directory comes from larch.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "parallel workers for directory runs (0 = all CPUs)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk symbol table cache")
	checkCmd.Flags().Bool("ui", true, "show progress UI for directory runs on a terminal")
	checkCmd.Flags().Bool("summary", false, "print per-file symbol table summaries")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target, err := resolveCheckTarget(args)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("cannot stat %q: %w", target, err)
	}
	if info.IsDir() {
		return checkDir(cmd, target)
	}
	return checkFile(cmd, target)
}

// resolveCheckTarget falls back to the manifest's source directory when no
// argument was given.
func resolveCheckTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, found, err := loadProjectManifest(".")
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%s", noLarchTomlMessage)
	}
	return manifest.SourceDir(), nil
}

func checkFile(cmd *cobra.Command, path string) error {
	fs := source.NewFileSet()
	result, checkErr := driver.CheckFile(fs, path)
	if checkErr != nil {
		return reportError(cmd, checkErr, fs)
	}
	fmt.Fprintf(os.Stdout, "%s: %d forms ok\n", path, len(result.Forms))
	if summary, _ := cmd.Flags().GetBool("summary"); summary {
		printTableSummary(result.Table)
	}
	return nil
}

func checkDir(cmd *cobra.Command, dir string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	wantUI, _ := cmd.Flags().GetBool("ui")
	maxErrors, _ := cmd.Root().PersistentFlags().GetInt("max-errors")

	var cache *driver.DiskCache
	if !noCache {
		// A broken cache dir downgrades to uncached checking.
		cache, _ = driver.OpenDiskCache("larch")
	}

	opts := driver.Options{
		MaxErrors: maxErrors,
		Jobs:      jobs,
		Cache:     cache,
	}

	var (
		fileSet *source.FileSet
		results []driver.FileResult
		global  *symbols.Global
		bag     *diag.Bag
		runErr  error
	)
	if wantUI && isTerminal(os.Stdout) {
		fileSet, results, global, bag, runErr = checkDirWithUI(cmd.Context(), dir, opts)
	} else {
		fileSet, results, global, bag, runErr = driver.CheckDir(cmd.Context(), dir, opts)
	}
	if runErr != nil {
		return runErr
	}

	if !bag.Empty() {
		diag.PrettyBag(os.Stderr, bag, fileSet, prettyOpts(cmd, os.Stderr))
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("%d of %d files failed", bag.Len(), len(results))
	}

	fmt.Fprintf(os.Stdout, "%d files ok\n", global.Len())
	if summary, _ := cmd.Flags().GetBool("summary"); summary {
		for _, file := range global.Files {
			table, _ := global.Table(file)
			printTableSummary(table)
		}
	}
	return nil
}

// checkDirWithUI runs the directory pipeline behind a progress display.
func checkDirWithUI(ctx context.Context, dir string, opts driver.Options) (*source.FileSet, []driver.FileResult, *symbols.Global, *diag.Bag, error) {
	type outcome struct {
		fileSet *source.FileSet
		results []driver.FileResult
		global  *symbols.Global
		bag     *diag.Bag
		err     error
	}

	events := make(chan driver.Event, 256)
	opts.Observer = func(ev driver.Event) { events <- ev }
	outcomeCh := make(chan outcome, 1)

	files, _ := driver.ListSourceFiles(dir)

	go func() {
		fs, results, global, bag, err := driver.CheckDir(ctx, dir, opts)
		outcomeCh <- outcome{fs, results, global, bag, err}
		close(events)
	}()

	model := ui.NewProgressModel("checking "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// If the display exited early (quit key, render error), keep draining so
	// the workers' observer sends never block on a full channel.
	go func() {
		for range events {
		}
	}()
	out := <-outcomeCh
	if uiErr != nil && out.err == nil {
		out.err = uiErr
	}
	return out.fileSet, out.results, out.global, out.bag, out.err
}

func printTableSummary(t *symbols.Table) {
	fmt.Fprintf(os.Stdout, "%s:\n", t.File)
	printEntries("types", t.Types)
	printEntries("generics", t.Generics)
	printEntries("sigs", t.Sigs)
	printEntries("prims", t.Prims)
	printEntries("sums", t.Sums)
	printEntries("prods", t.Prods)
	printEntries("attrs", t.Attrs)
	if len(t.Funs) > 0 {
		fmt.Fprintf(os.Stdout, "  funs: %d\n", len(t.Funs))
	}
	if len(t.Lets) > 0 {
		fmt.Fprintf(os.Stdout, "  lets: %d\n", len(t.Lets))
	}
	if len(t.Apps) > 0 {
		fmt.Fprintf(os.Stdout, "  apps: %d\n", len(t.Apps))
	}
	printNames("exported values", keysOfInts(t.ExportedValues))
	printNames("exported types", keysOfInts(t.ExportedTypes))
	printNames("imported values", keysOfStrings(t.ImportedValues))
	printNames("imported types", keysOfStrings(t.ImportedTypes))
}

func printEntries(label string, entries []symbols.Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(os.Stdout, "  %s:", label)
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, " %s", e.Name)
	}
	fmt.Fprintln(os.Stdout)
}

func printNames(label string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(os.Stdout, "  %s:", label)
	for _, n := range names {
		fmt.Fprintf(os.Stdout, " %s", n)
	}
	fmt.Fprintln(os.Stdout)
}

func keysOfInts(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func keysOfStrings(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
