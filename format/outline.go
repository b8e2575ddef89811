package format

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"scribe/catalog"
	"scribe/document"
	"scribe/layout"
	"scribe/outline"
	"scribe/session"
	"scribe/state"
	"scribe/style"
)

// Outline implements the outline subcommand: prints the extracted outline,
// optionally persists the snapshot, and resolves a saved entry back to its
// live position after the manuscript has been edited.
func Outline(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("outline")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input manuscript has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	isArchive, err := document.Sniff(src)
	if err != nil {
		return fmt.Errorf("unable to check file type: %w", err)
	}
	if isArchive {
		return fmt.Errorf("bundle input is not supported here, format it or point to a manuscript file (%s)", src)
	}

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open input (%s): %w", src, err)
	}
	defer f.Close()

	doc, err := document.Parse(f, log)
	if err != nil {
		return fmt.Errorf("unable to parse manuscript (%s): %w", src, err)
	}

	cat, err := catalog.Load(doc.Template)
	if err != nil {
		return fmt.Errorf("unable to load style catalog: %w", err)
	}
	style.NewResolver(cat, log).Normalize(doc)

	eng := layout.NewEngine(doc, layout.RenderContext{Page: env.Cfg.Page}, layout.NewEstimator(doc, cat), log)
	if _, err := eng.Paginate(); err != nil {
		return fmt.Errorf("unable to paginate manuscript: %w", err)
	}

	x := outline.NewExtractor(cat, log)
	x.TitleLimit(env.Cfg.Document.Outline.MaxTitleRunes)
	entries := x.Extract(doc, eng.PageForParagraph)

	var store *session.Store
	if path := env.Cfg.Session.Path; len(path) > 0 {
		if store, err = session.Open(path, log); err != nil {
			log.Warn("Unable to open session store", zap.Error(err))
			store = nil
		} else {
			defer store.Close()
		}
	}

	if cmd.Bool("save") {
		if store == nil {
			return errors.New("session store is not configured, set session.path")
		}
		if err := store.SaveOutline(doc.ID, entries); err != nil {
			return fmt.Errorf("unable to save outline snapshot: %w", err)
		}
	}

	if title := cmd.String("goto"); len(title) > 0 {
		return jumpTo(doc, title, eng, store, log)
	}

	_, err = os.Stdout.Write(outlineReport(entries, eng))
	return err
}

// jumpTo resolves a heading title to a live paragraph. A stored snapshot,
// when present, narrows the search with the captured style tag and source
// offset, so duplicate titles land on the instance nearest to where the
// entry was taken.
func jumpTo(doc *document.Document, title string, eng *layout.Engine, store *session.Store, log *zap.Logger) error {
	target := outline.Entry{Title: title}
	if store != nil {
		if saved, err := store.Outline(doc.ID); err != nil {
			log.Warn("Unable to load outline snapshot", zap.Error(err))
		} else {
			for _, e := range saved {
				if strings.EqualFold(strings.TrimSpace(e.Title), strings.TrimSpace(title)) {
					target = e
					break
				}
			}
		}
	}

	idx, ok := outline.Resolve(doc, target)
	if !ok {
		return fmt.Errorf("no heading matches %q", title)
	}

	page := eng.PageForParagraph(idx)
	fmt.Fprintf(os.Stdout, "%s -> paragraph %d, page %s\n", title, idx, eng.DisplayedPageNumber(page))

	if store != nil {
		if err := store.SaveLastPage(doc.ID, page); err != nil {
			log.Warn("Unable to store reading position", zap.Error(err))
		}
	}
	return nil
}
