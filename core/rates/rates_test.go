// Package rates - table and override tests
package rates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

// TestDefaultsAreStable checks a few anchor values of the documented default
// schedule.
func TestDefaultsAreStable(t *testing.T) {
	table := Default()

	if want := decimal.NewFromFloat(0.015); !table.Direct.DomesticRate.Equal(want) {
		t.Errorf("DomesticRate = %s, want %s", table.Direct.DomesticRate, want)
	}
	if want := decimal.NewFromFloat(0.05); !table.MoR.PlatformRate.Equal(want) {
		t.Errorf("PlatformRate = %s, want %s", table.MoR.PlatformRate, want)
	}
	if want := decimal.NewFromFloat(0.79); !table.Assumptions.USDToGBPRate.Equal(want) {
		t.Errorf("USDToGBPRate = %s, want %s", table.Assumptions.USDToGBPRate, want)
	}
}

// TestApplyOverridesPerField checks a set field replaces the default while
// everything else in the group keeps it.
func TestApplyOverridesPerField(t *testing.T) {
	rate := 0.02
	table := Default().Apply(&Overrides{
		Direct: &DirectOverrides{DomesticRate: &rate},
	})

	if want := decimal.NewFromFloat(0.02); !table.Direct.DomesticRate.Equal(want) {
		t.Errorf("DomesticRate = %s, want %s", table.Direct.DomesticRate, want)
	}
	// Same group, untouched field
	if want := decimal.NewFromFloat(0.20); !table.Direct.DomesticFixedFee.Equal(want) {
		t.Errorf("DomesticFixedFee = %s, want %s", table.Direct.DomesticFixedFee, want)
	}
	// Different group, untouched
	if want := decimal.NewFromFloat(0.05); !table.MoR.PlatformRate.Equal(want) {
		t.Errorf("PlatformRate = %s, want %s", table.MoR.PlatformRate, want)
	}
}

// TestApplyDoesNotMutateReceiver checks Apply returns a copy.
func TestApplyDoesNotMutateReceiver(t *testing.T) {
	base := Default()
	rate := 0.09
	_ = base.Apply(&Overrides{MoR: &MoROverrides{PlatformRate: &rate}})

	if want := decimal.NewFromFloat(0.05); !base.MoR.PlatformRate.Equal(want) {
		t.Errorf("receiver mutated: PlatformRate = %s, want %s", base.MoR.PlatformRate, want)
	}
}

// TestApplyNilOverrides checks a nil override set returns the defaults.
func TestApplyNilOverrides(t *testing.T) {
	table := Default().Apply(nil)
	if !table.Direct.DomesticRate.Equal(Default().Direct.DomesticRate) {
		t.Error("nil overrides changed the table")
	}
}

// TestLoadJSONOverrides checks partial JSON files merge over the defaults.
func TestLoadJSONOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	content := `{
  "direct": {"domestic_rate": 0.02},
  "assumptions": {"usd_to_gbp_rate": 0.8}
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := decimal.NewFromFloat(0.02); !table.Direct.DomesticRate.Equal(want) {
		t.Errorf("DomesticRate = %s, want %s", table.Direct.DomesticRate, want)
	}
	if want := decimal.NewFromFloat(0.8); !table.Assumptions.USDToGBPRate.Equal(want) {
		t.Errorf("USDToGBPRate = %s, want %s", table.Assumptions.USDToGBPRate, want)
	}
	// Untouched group keeps its default
	if want := decimal.NewFromFloat(0.05); !table.MoR.PlatformRate.Equal(want) {
		t.Errorf("PlatformRate = %s, want %s", table.MoR.PlatformRate, want)
	}
}

// TestLoadHCLOverrides checks the HCL rates file format.
func TestLoadHCLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.hcl")
	content := `
direct {
  domestic_rate = 0.018
  chargeback_fee = 20
}

mor {
  platform_rate = 0.045
}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := decimal.NewFromFloat(0.018); !table.Direct.DomesticRate.Equal(want) {
		t.Errorf("DomesticRate = %s, want %s", table.Direct.DomesticRate, want)
	}
	if want := decimal.NewFromInt(20); !table.Direct.ChargebackFee.Equal(want) {
		t.Errorf("ChargebackFee = %s, want %s", table.Direct.ChargebackFee, want)
	}
	if want := decimal.NewFromFloat(0.045); !table.MoR.PlatformRate.Equal(want) {
		t.Errorf("PlatformRate = %s, want %s", table.MoR.PlatformRate, want)
	}
	// Group with no block keeps its defaults
	if want := decimal.NewFromFloat(0.79); !table.Assumptions.USDToGBPRate.Equal(want) {
		t.Errorf("USDToGBPRate = %s, want %s", table.Assumptions.USDToGBPRate, want)
	}
}

// TestLoadMissingFileReturnsDefaults checks an absent path is not an error.
func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !table.Direct.DomesticRate.Equal(Default().Direct.DomesticRate) {
		t.Error("missing file did not fall back to defaults")
	}
}

// TestSaveLoadRoundTrip checks a saved table reads back with the same
// values via the flat JSON shape.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")

	original := Default()
	if err := original.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Direct.NonEuropeanRate.Equal(original.Direct.NonEuropeanRate) {
		t.Errorf("NonEuropeanRate = %s, want %s", loaded.Direct.NonEuropeanRate, original.Direct.NonEuropeanRate)
	}
	if !loaded.Accountancy.BaseAnnualAccountantFee.Equal(original.Accountancy.BaseAnnualAccountantFee) {
		t.Errorf("BaseAnnualAccountantFee = %s, want %s", loaded.Accountancy.BaseAnnualAccountantFee, original.Accountancy.BaseAnnualAccountantFee)
	}
}
