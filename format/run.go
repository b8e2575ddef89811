// Package format drives batch manuscript formatting: parse, style
// normalization, navigation line repair, pagination and outline capture,
// finished with plain or bundled output.
package format

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"scribe/archive"
	"scribe/catalog"
	"scribe/common"
	"scribe/document"
	"scribe/layout"
	"scribe/outline"
	"scribe/repair"
	"scribe/session"
	"scribe/state"
	"scribe/style"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("format")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	if path := env.Cfg.Document.StylesheetPath; len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet from %q: %w", path, err)
		}
		env.Stylesheet = data
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("layout", env.Cfg.Document.Layout))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process handles the core formatting logic independently of CLI framework.
// It determines the input type (directory, bundle, or single manuscript) and
// processes accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.Mode().IsDir() {
		return processDir(ctx, src, dst, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	isArchive, err := document.Sniff(src)
	if err != nil {
		return fmt.Errorf("unable to check file type: %w", err)
	}

	env := state.EnvFromContext(ctx)
	if env.Rpt != nil {
		if err := env.Rpt.StoreCopy(filepath.Join("input", filepath.Base(src)), src); err != nil {
			log.Warn("Unable to store input in report", zap.String("file", src), zap.Error(err))
		}
	}

	if isArchive {
		return processArchive(ctx, src, "", dst, log)
	}

	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open input (%s): %w", src, err)
	}
	defer file.Close()

	if err := processManuscript(ctx, file, filepath.Base(src), dst, log); err != nil {
		log.Error("Unable to process file", zap.String("file", src), zap.Error(err))
	}
	return nil
}

// processDir walks directory tree finding manuscripts and bundles and
// processes them.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		isArchive, err := document.Sniff(path)
		if err != nil {
			log.Debug("Skipping file, not recognized as manuscript or bundle", zap.String("file", path), zap.Error(err))
			return nil
		}

		count++

		if isArchive {
			if err := processArchive(ctx, path, filepath.Dir(strings.TrimPrefix(path, dir)), dst, log); err != nil {
				log.Error("Unable to process bundle", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}
		defer file.Close()

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processManuscript(ctx, file, src, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processArchive walks manuscript entries inside a bundle and processes
// them.
func processArchive(ctx context.Context, path, pathOut, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	err = archive.Walk(path, common.OutputLayoutPlain.Ext(), func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in bundle",
				zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		if err := processManuscript(ctx, r, filepath.Join(pathOut, f.FileHeader.Name), dst, log); err != nil {
			log.Error("Unable to process file in bundle",
				zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
	return err
}

// processManuscript formats a single manuscript. "src" is part of the source
// path (always including file name) relative to the original path. When an
// actual file was specified it will be just base file name without a path,
// for directory or bundle input it is the relative path inside. "dst" is the
// destination directory where the formatted file should be written.
func processManuscript(ctx context.Context, r io.Reader, src, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var refID, outputName string

	log.Info("Formatting starting", zap.String("from", src))
	defer func(start time.Time) {
		// Keep going when a single manuscript blows up mid-batch.
		if r := recover(); r != nil {
			log.Error("Formatting ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("formatting panic: %v", r)
		} else {
			log.Info("Formatting completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("ref_id", refID))
		}
	}(time.Now())

	doc, err := document.Parse(r, log)
	if err != nil {
		return fmt.Errorf("unable to parse manuscript (%s): %w", src, err)
	}
	refID = doc.ID.String()

	cat, err := catalog.Load(doc.Template)
	if err != nil {
		return fmt.Errorf("unable to load style catalog: %w", err)
	}
	if len(env.Stylesheet) > 0 {
		cat.ApplyStylesheet(env.Stylesheet, log)
	}

	style.NewResolver(cat, log).Normalize(doc)

	rc := layout.RenderContext{Page: env.Cfg.Page}

	pass := repair.NewPass(cat, env.Cfg.Leader, repair.EstimatingWidths{DefaultSize: 12}, log)
	stats := pass.Run(doc, rc.ContentWidth(), nil)
	if !stats.Skipped {
		log.Debug("Navigation lines repaired",
			zap.Int("examined", stats.Examined), zap.Int("retagged", stats.Retagged),
			zap.Int("tab_stops", stats.TabStopsFixed), zap.Int("leaders", stats.LeadersRewritten),
			zap.Int("tabs", stats.TabsInserted))
	}

	eng := layout.NewEngine(doc, rc, layout.NewEstimator(doc, cat), log)
	if _, err := eng.Paginate(); err != nil {
		return fmt.Errorf("unable to paginate manuscript: %w", err)
	}

	x := outline.NewExtractor(cat, log)
	x.TitleLimit(env.Cfg.Document.Outline.MaxTitleRunes)
	entries := x.Extract(doc, eng.PageForParagraph)

	if path := env.Cfg.Session.Path; len(path) > 0 {
		if err := snapshotOutline(path, doc, entries, log); err != nil {
			log.Warn("Unable to save outline snapshot", zap.Error(err))
		}
	}

	outputName = buildOutputPath(doc, src, dst, eng.PageCount(), env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	switch env.Cfg.Document.Layout {
	case common.OutputLayoutBundle:
		if err := writeBundle(outputName, doc, entries, eng, env, log); err != nil {
			return fmt.Errorf("unable to generate bundle: %w", err)
		}
	default:
		if err := writePlain(outputName, doc); err != nil {
			return fmt.Errorf("unable to generate output: %w", err)
		}
	}

	// Store formatting result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", refID, filepath.Ext(outputName)), outputName)
	}

	return nil
}

func snapshotOutline(path string, doc *document.Document, entries []outline.Entry, log *zap.Logger) error {
	store, err := session.Open(path, log)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveOutline(doc.ID, entries)
}

func writePlain(path string, doc *document.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}
