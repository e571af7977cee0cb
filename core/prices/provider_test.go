package prices

import (
	"context"
	"testing"
)

func TestStaticProvider(t *testing.T) {
	series := DefaultSeries()
	got, err := NewStatic(series).Prices(context.Background())
	if err != nil {
		t.Fatalf("prices: %v", err)
	}
	if got.Len() != 24 {
		t.Fatalf("series length %d, want 24", got.Len())
	}
	if got[0].Consumption != 8 || got[0].Production != 7 {
		t.Fatalf("unexpected first point %+v", got[0])
	}
}
