// Package engine - direct strategy tests
package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"payment-cost/core/rates"
	"payment-cost/core/types"
	"payment-cost/internal/errors"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func profileFixture() types.TransactionProfile {
	return types.TransactionProfile{
		UnitAmount:             decimal.NewFromInt(50),
		MonthlyVolume:          100,
		EuropeanSharePct:       33,
		USSharePct:             33,
		SubscriptionSharePct:   0,
		SubscriptionUnitAmount: decimal.NewFromInt(30),
	}
}

// TestDirectDomesticBucket checks the worked example: at eu=us=33 on 100
// transactions, the domestic bucket is the remaining 34 transactions and the
// base processing fee is 34*0.20 + 34*50*0.015.
func TestDirectDomesticBucket(t *testing.T) {
	flags := types.ComplianceFlags{EUVatRequired: true, NexusCount: 1}

	b, err := EvaluateDirect(profileFixture(), flags, Options{}, rates.Default())
	if err != nil {
		t.Fatalf("EvaluateDirect: %v", err)
	}

	want := mustDecimal(t, "32.3") // 6.80 fixed + 25.50 percentage
	if !b.BaseProcessingFees.Equal(want) {
		t.Errorf("BaseProcessingFees = %s, want %s", b.BaseProcessingFees, want)
	}

	// EU bucket: 33 txns, 33*0.20 + 33*50*0.025 = 6.60 + 41.25
	wantEU := mustDecimal(t, "47.85")
	if !b.EuropeanFees.Equal(wantEU) {
		t.Errorf("EuropeanFees = %s, want %s", b.EuropeanFees, wantEU)
	}

	// Non-domestic bucket: the 33 US txns at the non-European rate, plus a
	// rest-of-world remainder that is zero by construction.
	wantNonDom := mustDecimal(t, "60.225") // 33*0.20 + 33*50*0.0325
	if !b.NonDomesticFees.Equal(wantNonDom) {
		t.Errorf("NonDomesticFees = %s, want %s", b.NonDomesticFees, wantNonDom)
	}
}

// TestDirectReconciliation checks that the itemized components sum to the
// monthly total exactly, with every fee category switched on.
func TestDirectReconciliation(t *testing.T) {
	profile := profileFixture()
	profile.SubscriptionSharePct = 40
	flags := types.ComplianceFlags{
		EUVatRequired:      true,
		UKVatRequired:      true,
		USSalesTaxRequired: true,
		NexusCount:         2,
	}

	b, err := EvaluateDirect(profile, flags, Options{IncludeChargebacks: true}, rates.Default())
	if err != nil {
		t.Fatalf("EvaluateDirect: %v", err)
	}

	sum := types.SumComponents(b.Components())
	if !sum.Equal(b.TotalMonthlyCost) {
		t.Errorf("component sum %s != TotalMonthlyCost %s", sum, b.TotalMonthlyCost)
	}
	if !b.TotalAnnualCost.Equal(b.TotalMonthlyCost.Mul(decimal.NewFromInt(12))) {
		t.Errorf("TotalAnnualCost %s != 12 * TotalMonthlyCost", b.TotalAnnualCost)
	}
	if !b.MonthlyProfit.Equal(b.MonthlyTurnover.Sub(b.TotalMonthlyCost)) {
		t.Errorf("MonthlyProfit %s does not reconcile", b.MonthlyProfit)
	}
}

// TestDirectDeterministic checks referential transparency: identical inputs
// produce identical outputs.
func TestDirectDeterministic(t *testing.T) {
	flags := types.ComplianceFlags{EUVatRequired: true, NexusCount: 1}

	first, err := EvaluateDirect(profileFixture(), flags, Options{}, rates.Default())
	if err != nil {
		t.Fatalf("first evaluation: %v", err)
	}
	second, err := EvaluateDirect(profileFixture(), flags, Options{}, rates.Default())
	if err != nil {
		t.Fatalf("second evaluation: %v", err)
	}

	if !first.TotalMonthlyCost.Equal(second.TotalMonthlyCost) {
		t.Errorf("totals differ: %s vs %s", first.TotalMonthlyCost, second.TotalMonthlyCost)
	}
	firstComponents := first.Components()
	for i, c := range second.Components() {
		if !c.Amount.Equal(firstComponents[i].Amount) {
			t.Errorf("component %s differs: %s vs %s", c.Key, firstComponents[i].Amount, c.Amount)
		}
	}
}

// TestDirectRejectsShareSumOver100 checks that a share sum above 100 is
// refused as an input error instead of producing negative fee buckets.
func TestDirectRejectsShareSumOver100(t *testing.T) {
	profile := profileFixture()
	profile.EuropeanSharePct = 60
	profile.USSharePct = 60

	_, err := EvaluateDirect(profile, types.ComplianceFlags{NexusCount: 1}, Options{}, rates.Default())
	if err == nil {
		t.Fatal("expected error for share sum over 100, got nil")
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected %s, got %v", errors.TypeInput, err)
	}
}

// TestDirectChargebackToggle checks that chargebacks are the only manual
// component and disputes are always charged.
func TestDirectChargebackToggle(t *testing.T) {
	profile := profileFixture()
	profile.MonthlyVolume = 1000
	flags := types.ComplianceFlags{NexusCount: 1}

	without, err := EvaluateDirect(profile, flags, Options{}, rates.Default())
	if err != nil {
		t.Fatalf("EvaluateDirect: %v", err)
	}
	with, err := EvaluateDirect(profile, flags, Options{IncludeChargebacks: true}, rates.Default())
	if err != nil {
		t.Fatalf("EvaluateDirect: %v", err)
	}

	if !without.ChargebackFees.IsZero() {
		t.Errorf("chargebacks should be zero when excluded, got %s", without.ChargebackFees)
	}
	// 1000 * 0.006 * 15
	wantChargebacks := mustDecimal(t, "90")
	if !with.ChargebackFees.Equal(wantChargebacks) {
		t.Errorf("ChargebackFees = %s, want %s", with.ChargebackFees, wantChargebacks)
	}
	// 1000 * 0.002 * 15, regardless of the toggle
	wantDisputes := mustDecimal(t, "30")
	if !without.DisputeFees.Equal(wantDisputes) || !with.DisputeFees.Equal(wantDisputes) {
		t.Errorf("DisputeFees = %s / %s, want %s in both", without.DisputeFees, with.DisputeFees, wantDisputes)
	}
}

// TestDirectComplianceFees checks the per-region compliance fees and the
// nexus multiplier on the US fee.
func TestDirectComplianceFees(t *testing.T) {
	flags := types.ComplianceFlags{
		EUVatRequired:      true,
		UKVatRequired:      true,
		USSalesTaxRequired: true,
		NexusCount:         3,
	}

	b, err := EvaluateDirect(profileFixture(), flags, Options{}, rates.Default())
	if err != nil {
		t.Fatalf("EvaluateDirect: %v", err)
	}

	// 200 + 120 + 160*3
	want := mustDecimal(t, "800")
	if !b.TaxComplianceCost.Equal(want) {
		t.Errorf("TaxComplianceCost = %s, want %s", b.TaxComplianceCost, want)
	}
	if !b.AnnualComplianceCost.Equal(want.Mul(decimal.NewFromInt(12))) {
		t.Errorf("AnnualComplianceCost = %s, want %s", b.AnnualComplianceCost, want.Mul(decimal.NewFromInt(12)))
	}
}

// TestDirectTaxServiceIndependentOfFlags checks the tax service surcharge is
// charged on turnover whether or not any registration flag is set.
func TestDirectTaxServiceIndependentOfFlags(t *testing.T) {
	profile := profileFixture()

	off, err := EvaluateDirect(profile, types.ComplianceFlags{NexusCount: 1}, Options{}, rates.Default())
	if err != nil {
		t.Fatalf("EvaluateDirect: %v", err)
	}
	on, err := EvaluateDirect(profile, types.ComplianceFlags{
		EUVatRequired: true, UKVatRequired: true, USSalesTaxRequired: true, NexusCount: 1,
	}, Options{}, rates.Default())
	if err != nil {
		t.Fatalf("EvaluateDirect: %v", err)
	}

	// 5000 * 0.005
	want := mustDecimal(t, "25")
	if !off.TaxServiceSurcharge.Equal(want) || !on.TaxServiceSurcharge.Equal(want) {
		t.Errorf("TaxServiceSurcharge = %s / %s, want %s in both", off.TaxServiceSurcharge, on.TaxServiceSurcharge, want)
	}
}

// TestDirectAccountantFeeAlwaysIncluded checks a zero-volume profile still
// pays the flat monthly accountancy fee and nothing else.
func TestDirectAccountantFeeAlwaysIncluded(t *testing.T) {
	profile := types.TransactionProfile{
		UnitAmount:    decimal.NewFromInt(50),
		MonthlyVolume: 0,
	}

	b, err := EvaluateDirect(profile, types.ComplianceFlags{NexusCount: 1}, Options{}, rates.Default())
	if err != nil {
		t.Fatalf("EvaluateDirect: %v", err)
	}

	if !b.TotalMonthlyCost.Equal(b.AccountantFee) {
		t.Errorf("zero-volume total %s should equal accountant fee %s", b.TotalMonthlyCost, b.AccountantFee)
	}
	if b.AccountantFee.IsZero() {
		t.Error("accountant fee should not be zero")
	}
}

// TestDirectRegistrationCostExcludedFromTotals checks the one-off
// registration cost is reported but never folded into the totals.
func TestDirectRegistrationCostExcludedFromTotals(t *testing.T) {
	fee := 350.0
	table := rates.Default().Apply(&rates.Overrides{
		Accountancy: &rates.AccountancyOverrides{OneOffRegistrationFee: &fee},
	})

	b, err := EvaluateDirect(profileFixture(), types.ComplianceFlags{NexusCount: 1}, Options{}, table)
	if err != nil {
		t.Fatalf("EvaluateDirect: %v", err)
	}

	if !b.OneOffRegistrationCost.Equal(decimal.NewFromFloat(fee)) {
		t.Errorf("OneOffRegistrationCost = %s, want %v", b.OneOffRegistrationCost, fee)
	}
	if !types.SumComponents(b.Components()).Equal(b.TotalMonthlyCost) {
		t.Error("registration cost leaked into the component sum")
	}
}
