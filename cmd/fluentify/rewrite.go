package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sirkon/fluentify/internal/config"
	"github.com/sirkon/fluentify/internal/fileedit"
	"github.com/sirkon/fluentify/internal/report"
	"github.com/sirkon/fluentify/internal/rewrite"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [flags] <file.go|directory>...",
	Short: "Rewrite classic assertions in Go files",
	Long: `Rewrite finds classic assertion calls and prints their constraint based
replacements. With -w the files are rewritten in place.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().BoolP("write", "w", false, "write the result to the source files")
	rewriteCmd.Flags().IntP("jobs", "j", 0, "files processed concurrently, GOMAXPROCS when not positive")
	rewriteCmd.Flags().Bool("fail-on-change", false, "exit with a non-zero code when anything would change")
}

var (
	posColor    = color.New(color.FgCyan)
	codeColor   = color.New(color.FgYellow, color.Bold)
	beforeColor = color.New(color.FgRed)
	afterColor  = color.New(color.FgGreen)
)

func runRewrite(cmd *cobra.Command, args []string) error {
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	failOnChange, err := cmd.Flags().GetBool("fail-on-change")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rw, err := cfg.Rewriter()
	if err != nil {
		return fmt.Errorf("setup rewriter: %w", err)
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	var rep report.Reporter
	results, err := rewriteFiles(cmd, cfg, rw, &rep, files, jobs, write)
	if err != nil {
		return err
	}

	var changes int
	for _, res := range results {
		if res == nil || !res.Changed() {
			continue
		}
		changes += len(res.Changes)
		if write {
			continue
		}
		if err := printChanges(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	if verbose {
		if err := rep.PrintSummary(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	slog.Debug("rewrite done", slog.Int("files", len(files)), slog.Int("changes", changes))

	if failOnChange && changes > 0 {
		return errChanges
	}
	return nil
}

// rewriteFiles processes files concurrently. Results keep the order of files.
func rewriteFiles(
	cmd *cobra.Command,
	cfg *config.Config,
	rw *rewrite.Rewriter,
	rep *report.Reporter,
	files []string,
	jobs int,
	write bool,
) ([]*fileedit.Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*fileedit.Result, len(files))
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, min(jobs, len(files))))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if !cfg.Includes(path) {
				slog.Debug("skip file", slog.String("path", path))
				return nil
			}

			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			res, err := fileedit.RewriteSource(gctx, path, src, rw, fileedit.WithReporter(rep))
			if err != nil {
				return err
			}
			results[i] = res
			slog.Debug("file processed", slog.String("path", path), slog.Int("changes", len(res.Changes)))
			for _, c := range res.Changes {
				slog.Debug("change",
					slog.String("pos", c.Pos.String()),
					slog.String("rule", c.Rule.Code()),
					slog.String("after", c.After),
					slog.String("comment", c.Comment),
				)
			}

			if !write || !res.Changed() {
				return nil
			}
			if err := writeFile(path, res.Source); err != nil {
				return err
			}
			slog.Info("file rewritten", slog.String("path", path))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func printChanges(w io.Writer, res *fileedit.Result) error {
	for _, c := range res.Changes {
		_, err := fmt.Fprintf(w, "%s: %s %s → %s\n",
			posColor.Sprintf("%s:%d", c.Pos.Filename, c.Pos.Line),
			codeColor.Sprint(c.Rule.Code()),
			beforeColor.Sprint(c.Before),
			afterColor.Sprint(c.After),
		)
		if err != nil {
			return fmt.Errorf("print changes: %w", err)
		}
	}

	return nil
}
