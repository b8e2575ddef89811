package session

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	"scribe/outline"
)

func open(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("unable to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreOutlineRoundTrip(t *testing.T) {
	s := open(t, "")
	doc := uuid.Must(uuid.NewV7())

	entries := []outline.Entry{
		{Level: 0, Title: "Part One", StyleTag: "Part Title", Paragraph: 0, Page: 0, Anchor: "part-one"},
		{Level: 1, Title: "The Beginning", StyleTag: "Chapter Title", Paragraph: 4, Page: 2, Anchor: "the-beginning"},
	}
	if err := s.SaveOutline(doc, entries); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Outline(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, entries)
	}

	// snapshot replacement, not accumulation
	if err := s.SaveOutline(doc, entries[:1]); err != nil {
		t.Fatalf("resave: %v", err)
	}
	if got, _ = s.Outline(doc); len(got) != 1 {
		t.Errorf("resave kept %d entries, want 1", len(got))
	}

	if got, _ = s.Outline(uuid.Must(uuid.NewV7())); got != nil {
		t.Errorf("unknown manuscript has an outline: %+v", got)
	}
}

func TestStoreLastPage(t *testing.T) {
	s := open(t, "")
	doc := uuid.Must(uuid.NewV7())

	if _, found, err := s.LastPage(doc); err != nil || found {
		t.Fatalf("fresh manuscript has a position: found=%v err=%v", found, err)
	}

	if err := s.SaveLastPage(doc, 7); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveLastPage(doc, 12); err != nil {
		t.Fatalf("update: %v", err)
	}
	page, found, err := s.LastPage(doc)
	if err != nil || !found || page != 12 {
		t.Errorf("got page=%d found=%v err=%v, want 12", page, found, err)
	}

	if err := s.SaveLastPage(doc, -3); err != nil {
		t.Fatalf("negative save: %v", err)
	}
	if page, _, _ = s.LastPage(doc); page != 0 {
		t.Errorf("negative page stored as %d, want clamp to 0", page)
	}
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	doc := uuid.Must(uuid.NewV7())

	s := open(t, path)
	if err := s.SaveLastPage(doc, 5); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s = open(t, path)
	page, found, err := s.LastPage(doc)
	if err != nil || !found || page != 5 {
		t.Errorf("got page=%d found=%v err=%v after reopen, want 5", page, found, err)
	}
}
