package layout

import (
	"errors"
	"strings"
	"testing"

	"scribe/catalog"
	"scribe/common"
)

func TestEstimatorGrowsWithContent(t *testing.T) {
	cat, err := catalog.Load(common.TemplateKindProse)
	if err != nil {
		t.Fatalf("unable to load catalog: %v", err)
	}

	short := textDocument(strings.Repeat("word ", 20))
	long := textDocument(strings.Repeat("word ", 2000))

	hs, err := NewEstimator(short, cat).MeasureHeight(468)
	if err != nil {
		t.Fatal(err)
	}
	hl, err := NewEstimator(long, cat).MeasureHeight(468)
	if err != nil {
		t.Fatal(err)
	}
	if hl <= hs {
		t.Errorf("longer text measured shorter: %f <= %f", hl, hs)
	}
}

func TestEstimatorRejectsBadWidth(t *testing.T) {
	_, err := NewEstimator(textDocument("x"), nil).MeasureHeight(0)
	if !errors.Is(err, ErrMeasurementUnavailable) {
		t.Errorf("expected ErrMeasurementUnavailable, got %v", err)
	}
}
