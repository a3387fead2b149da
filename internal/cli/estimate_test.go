package cli

import (
	"testing"

	"github.com/printhaus/bagbom/internal/model"
)

func TestParseJobType(t *testing.T) {
	jt, err := parseJobType("sos")
	if err != nil {
		t.Fatal(err)
	}
	if jt != model.JobTypeSOS {
		t.Errorf("expected SOS, got %s", jt)
	}

	if _, err := parseJobType("Paper Cup"); err == nil {
		t.Error("unknown job type accepted")
	}
}

func TestRangeValidator(t *testing.T) {
	v := rangeValidator("width", model.MinWidthIn, model.MaxWidthIn)
	if err := v("10.5"); err != nil {
		t.Errorf("valid width rejected: %v", err)
	}
	if err := v("4"); err == nil {
		t.Error("out-of-range width accepted")
	}
	if err := v("wide"); err == nil {
		t.Error("non-numeric width accepted")
	}
}

func TestQuantityValidator(t *testing.T) {
	if err := quantityValidator("10000"); err != nil {
		t.Errorf("valid quantity rejected: %v", err)
	}
	if err := quantityValidator("9999"); err == nil {
		t.Error("quantity below minimum accepted")
	}
	if err := quantityValidator("10.5"); err == nil {
		t.Error("fractional quantity accepted")
	}
}

func TestJobFromFlagsValidates(t *testing.T) {
	estimateFlags.customer = "Acme Traders"
	estimateFlags.email = "orders@acme.example.com"
	estimateFlags.mobile = "9876543210"
	estimateFlags.jobType = "Carry Bag"
	estimateFlags.width = 10
	estimateFlags.bottom = 4
	estimateFlags.height = 12
	estimateFlags.gsm = 100
	estimateFlags.quantity = 10000
	estimateFlags.colors = []string{"Red"}
	t.Cleanup(func() { estimateFlags.colors = nil })

	job, err := jobFromFlags()
	if err != nil {
		t.Fatal(err)
	}
	if job.Type != model.JobTypeCarryBag {
		t.Errorf("expected Carry Bag, got %s", job.Type)
	}
	if !job.Printed() {
		t.Error("expected a printed job")
	}

	estimateFlags.gsm = 10
	if _, err := jobFromFlags(); err == nil {
		t.Error("out-of-range gsm accepted")
	}
}
