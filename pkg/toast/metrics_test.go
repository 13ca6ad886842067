package toast

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(MetricsConfig{Registry: reg})
	toaster, _, clock := newTestToaster(WithObserver(m))
	ctx := context.Background()

	a := toaster.Show(ctx, "a", TypeSuccess)
	toaster.Show(ctx, "b", "danger")
	toaster.Show(ctx, "c", TypeInfo)

	if got := testutil.ToFloat64(m.active); got != 3 {
		t.Errorf("active = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.shown.WithLabelValues("alert")); got != 1 {
		t.Errorf("shown{alert} = %v, want 1", got)
	}

	a.Dismiss()
	clock.Advance(5 * time.Second)
	clock.Advance(DefaultExitDelay)

	if got := testutil.ToFloat64(m.dismissed.WithLabelValues("manual")); got != 1 {
		t.Errorf("dismissed{manual} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.dismissed.WithLabelValues("auto")); got != 1 {
		t.Errorf("dismissed{auto} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.active); got != 1 {
		t.Errorf("active = %v, want 1", got)
	}
}
