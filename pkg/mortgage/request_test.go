package mortgage

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-compare/pkg/amortization"
)

func defaultRequest() Request {
	return Request{
		A:        Offer{Principal: 255000, AnnualRatePercent: 4.01, UpfrontFees: 1099, TermYears: 25},
		B:        Offer{AnnualRatePercent: 4.02, UpfrontFees: 934, TermYears: 25},
		FixYears: 5,
		Timing:   amortization.Due,
		Options:  DefaultOptions(),
	}
}

func TestCompare(t *testing.T) {
	report, err := Compare(defaultRequest())
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if report.A.Params.Name != "Mortgage 1" || report.B.Params.Name != "Mortgage 2" {
		t.Errorf("default names = (%q, %q)", report.A.Params.Name, report.B.Params.Name)
	}
	if report.B.Params.Principal != 255000 {
		t.Errorf("B principal = %v, expected it to follow A", report.B.Params.Principal)
	}
	if report.Comparison.Cheaper != WinnerB {
		t.Errorf("Cheaper = %v, expected B", report.Comparison.Cheaper)
	}
	if report.Comparison.DifferenceAbs != 44.21 {
		t.Errorf("DifferenceAbs = %v, expected 44.21", report.Comparison.DifferenceAbs)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}
}

func TestCompareSeparatePrincipals(t *testing.T) {
	req := defaultRequest()
	req.Options.SamePrincipal = false
	_, err := Compare(req)
	if !errors.Is(err, amortization.ErrInvalidInput) {
		t.Fatalf("expected missing principal for B to be rejected, got %v", err)
	}
	if !strings.Contains(err.Error(), "Mortgage 2") {
		t.Errorf("error %q should name Mortgage 2", err)
	}

	req.B.Principal = 200000
	report, err := Compare(req)
	if err != nil {
		t.Fatal(err)
	}
	if report.B.Params.Principal != 200000 {
		t.Errorf("B principal = %v, expected 200000", report.B.Params.Principal)
	}
	if report.Comparison.Cheaper != WinnerB {
		t.Errorf("smaller loan should be cheaper, got %v", report.Comparison.Cheaper)
	}
}

func TestCompareInertOptionsDoNotChangeResult(t *testing.T) {
	base, err := Compare(defaultRequest())
	if err != nil {
		t.Fatal(err)
	}

	req := defaultRequest()
	req.Options.AssumeRateContinues = false
	req.Options.AssumeNoOverpayments = false
	report, err := Compare(req)
	if err != nil {
		t.Fatal(err)
	}

	if report.Comparison != base.Comparison {
		t.Errorf("comparison changed: %+v vs %+v", report.Comparison, base.Comparison)
	}
	if len(report.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", report.Warnings)
	}
	if !strings.Contains(report.Warnings[0], "assumeRateContinues") ||
		!strings.Contains(report.Warnings[1], "assumeNoOverpayments") {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}
}

func TestRequestWarnings(t *testing.T) {
	req := defaultRequest()
	req.A.Principal = 500
	req.B.Principal = 600
	req.B.AnnualRatePercent = 0

	warnings := req.Warnings()
	joined := strings.Join(warnings, "\n")
	for _, fragment := range []string{
		"principal 600.00 given for mortgage 2 is replaced by 500.00",
		"Mortgage 1: principal 500.00 is below 1000",
		"Mortgage 2: principal 500.00 is below 1000",
		"Mortgage 2: interest rate 0.0000% is below 0.01%",
	} {
		if !strings.Contains(joined, fragment) {
			t.Errorf("warnings missing %q:\n%s", fragment, joined)
		}
	}
}

func TestExternalAPI(t *testing.T) {
	payment, err := MonthlyPayment(255000, 4.01, 25, amortization.Due)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(payment-1342.90) > 0.005 {
		t.Errorf("MonthlyPayment() = %.4f, expected 1342.90", payment)
	}

	interest, err := AccruedInterest(payment, 4.01, 25, 255000, 5, amortization.Due)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(interest-46990.35) > 0.01 {
		t.Errorf("AccruedInterest() = %.4f, expected 46990.35", interest)
	}

	balance, err := FutureBalance(payment, 4.01, 60, 255000, amortization.Due)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(balance-222155.96) > 0.01 {
		t.Errorf("FutureBalance() = %.4f, expected 222155.96", balance)
	}

	full, err := FutureBalance(payment, 4.01, 300, 255000, amortization.Due)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(full) > 1e-6 {
		t.Errorf("FutureBalance() at term = %v, expected ~0", full)
	}

	zero, err := MonthlyPayment(120000, 0, 10, amortization.Ordinary)
	if err != nil {
		t.Fatal(err)
	}
	if zero != 1000 {
		t.Errorf("MonthlyPayment() at zero rate = %v, expected 1000", zero)
	}
}

func TestExternalAPIInvalidInput(t *testing.T) {
	if _, err := MonthlyPayment(255000, -4, 25, amortization.Due); !errors.Is(err, amortization.ErrInvalidInput) {
		t.Errorf("negative rate: expected ErrInvalidInput, got %v", err)
	}
	if _, err := MonthlyPayment(255000, 4, 0, amortization.Due); !errors.Is(err, amortization.ErrInvalidInput) {
		t.Errorf("zero term: expected ErrInvalidInput, got %v", err)
	}
	if _, err := AccruedInterest(1342.90, 4.01, 25, 255000, 26, amortization.Due); !errors.Is(err, amortization.ErrInvalidInput) {
		t.Errorf("fix past term: expected ErrInvalidInput, got %v", err)
	}
	if _, err := FutureBalance(1342.90, math.NaN(), 60, 255000, amortization.Due); !errors.Is(err, amortization.ErrInvalidInput) {
		t.Errorf("NaN rate: expected ErrInvalidInput, got %v", err)
	}
}
