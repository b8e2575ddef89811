package format

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"scribe/document"
	"scribe/layout"
	"scribe/outline"
	"scribe/state"
)

const (
	bundleManuscriptName = "manuscript.msx"
	bundleOutlineName    = "outline.txt"
)

// writeBundle produces the .msz container with the formatted manuscript and,
// when enabled, the outline report next to it. The finished archive is
// rewritten without data descriptors so simple pull-parsers can stream it.
func writeBundle(outputPath string, doc *document.Document, entries []outline.Entry, eng *layout.Engine, env *state.LocalEnv, log *zap.Logger) error {
	_, tmpName := filepath.Split(outputPath)
	tmpDir, err := os.MkdirTemp("", "scribe-b-")
	if err != nil {
		return fmt.Errorf("unable to create work directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)
	tmpName = filepath.Join(tmpDir, tmpName)

	if err := assembleBundle(tmpName, doc, entries, eng, env, log); err != nil {
		return err
	}
	return copyZipWithoutDataDescriptors(tmpName, outputPath)
}

func assembleBundle(path string, doc *document.Document, entries []outline.Entry, eng *layout.Engine, env *state.LocalEnv, log *zap.Logger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer func() {
		if er := f.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to finalize output file: %w", er))
		}
	}()

	zw := zip.NewWriter(f)
	defer func() {
		if er := zw.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close output archive: %w", er))
		}
	}()

	w, err := zw.Create(bundleManuscriptName)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return fmt.Errorf("unable to serialize manuscript: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	if env.Cfg.Document.Outline.Report {
		w, err = zw.Create(bundleOutlineName)
		if err != nil {
			return err
		}
		if _, err := w.Write(outlineReport(entries, eng)); err != nil {
			return err
		}
		log.Debug("Outline report bundled", zap.Int("entries", len(entries)))
	}
	return nil
}

// outlineReport renders one line per entry: indentation by level, title,
// displayed page number and the anchor.
func outlineReport(entries []outline.Entry, eng *layout.Engine) []byte {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(strings.Repeat("  ", e.Level))
		b.WriteString(e.Title)
		b.WriteByte('\t')
		b.WriteString(eng.DisplayedPageNumber(e.Page))
		b.WriteString("\t#")
		b.WriteString(e.Anchor)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func copyZipWithoutDataDescriptors(from, to string) error {

	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}
