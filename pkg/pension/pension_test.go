package pension

import (
	"math"
	"testing"

	"github.com/iwvelando/pension-calculator/pkg/constants"
	"github.com/iwvelando/pension-calculator/pkg/reference"
)

const tolerance = 1e-9

func TestBasicPension(t *testing.T) {
	tests := []struct {
		name     string
		average  float64
		years    int
		ratio    float64
		expected float64
	}{
		{"National average 15 years", 8058, 15, 0.6, 966.96},
		{"Beijing 30 years", 12634, 30, 0.6, 3032.16},
		{"Zero ratio", 10000, 10, 0, 500},
		{"Zero years", 8058, 0, 0.6, 0},
		{"Negative years propagate", 10000, -10, 0, -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BasicPension(tt.average, tt.years, tt.ratio)
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("BasicPension(%v, %d, %v) = %v, expected %v", tt.average, tt.years, tt.ratio, result, tt.expected)
			}
		})
	}
}

func TestBasicPensionIsLinear(t *testing.T) {
	for _, average := range []float64{0, 3000, 8058, 12634.5} {
		for _, years := range []int{0, 1, 15, 20} {
			base := BasicPension(average, years, constants.ContributionRatio)

			doubledYears := BasicPension(average, years*2, constants.ContributionRatio)
			if math.Abs(doubledYears-2*base) > tolerance {
				t.Errorf("doubling years: got %v, expected %v", doubledYears, 2*base)
			}

			doubledAverage := BasicPension(average*2, years, constants.ContributionRatio)
			if math.Abs(doubledAverage-2*base) > tolerance {
				t.Errorf("doubling average salary: got %v, expected %v", doubledAverage, 2*base)
			}
		}
	}
}

func TestPersonalPension(t *testing.T) {
	tests := []struct {
		name     string
		salary   float64
		years    int
		age      int
		expected float64
	}{
		{"Age 60", 8000, 15, 60, 8000 * 0.08 * 12 * 15 / 139.0},
		{"Age 63", 8000, 15, 63, 8000 * 0.08 * 12 * 15 / 117.0},
		{"Age 40", 10000, 20, 40, 10000 * 0.08 * 12 * 20 / 233.0},
		{"Age 70", 10000, 20, 70, 10000 * 0.08 * 12 * 20 / 67.0},
		{"Zero years", 10000, 0, 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PersonalPension(tt.salary, tt.years, tt.age)
			if math.Abs(result-tt.expected) > tolerance {
				t.Errorf("PersonalPension(%v, %d, %d) = %v, expected %v", tt.salary, tt.years, tt.age, result, tt.expected)
			}
		})
	}
}

func TestPersonalPensionFallback(t *testing.T) {
	atSixty := PersonalPension(8000, 15, 60)
	for _, age := range []int{-5, 0, 39, 71, 75, 120} {
		if got := PersonalPension(8000, 15, age); got != atSixty {
			t.Errorf("PersonalPension at age %d = %v, expected fallback value %v", age, got, atSixty)
		}
		expected := PersonalAccountBalance(8000, 15) / constants.FallbackPayoutMonths
		if got := PersonalPension(8000, 15, age); math.Abs(got-expected) > tolerance {
			t.Errorf("PersonalPension at age %d = %v, expected %v", age, got, expected)
		}
	}
}

func TestPersonalPensionMonotonicInYears(t *testing.T) {
	for _, age := range []int{50, 60, 63, 70, 80} {
		prev := PersonalPension(9000, 0, age)
		for years := 1; years <= 40; years++ {
			curr := PersonalPension(9000, years, age)
			if curr < prev {
				t.Fatalf("personal pension decreased at %d years (age %d): %v < %v", years, age, curr, prev)
			}
			prev = curr
		}
	}
}

func TestPersonalPensionIncreasesWithRetirementAge(t *testing.T) {
	prev := PersonalPension(9000, 20, 40)
	for age := 41; age <= 70; age++ {
		curr := PersonalPension(9000, 20, age)
		if curr <= prev {
			t.Fatalf("personal pension did not increase at age %d: %v <= %v", age, curr, prev)
		}
		prev = curr
	}
}

func TestSummaryScenario(t *testing.T) {
	result := Summary(8000, 8058, 15, 60)

	if math.Abs(result.BasicPension-966.96) > 1e-6 {
		t.Errorf("basic pension = %v, expected 966.96", result.BasicPension)
	}
	if math.Abs(result.PersonalPension-828.7769784172662) > 1e-6 {
		t.Errorf("personal pension = %v, expected ~828.78", result.PersonalPension)
	}
	if math.Abs(result.TotalPension-1795.7369784172662) > 1e-6 {
		t.Errorf("total pension = %v, expected ~1795.74", result.TotalPension)
	}
	if math.Abs(result.ReplacementRate-22.44671223021583) > 1e-6 {
		t.Errorf("replacement rate = %v, expected ~22.45", result.ReplacementRate)
	}
	if result.PayoutMonths != 139 {
		t.Errorf("payout months = %d, expected 139", result.PayoutMonths)
	}
	if result.ContributionRatio != constants.ContributionRatio {
		t.Errorf("contribution ratio = %v, expected %v", result.ContributionRatio, constants.ContributionRatio)
	}
}

func TestSummaryTotalIsExactSum(t *testing.T) {
	cases := []Inputs{
		{MonthlySalary: 8000, AverageSalary: 8058, ContributionYears: 15, RetirementAge: 60},
		{MonthlySalary: 30000, AverageSalary: 12634, ContributionYears: 40, RetirementAge: 70},
		{MonthlySalary: 3000, AverageSalary: 7156, ContributionYears: 1, RetirementAge: 50},
		{MonthlySalary: 12345.67, AverageSalary: 9999.99, ContributionYears: 23, RetirementAge: 75},
	}

	for _, in := range cases {
		result := Summary(in.MonthlySalary, in.AverageSalary, in.ContributionYears, in.RetirementAge)
		basic := BasicPension(in.AverageSalary, in.ContributionYears, constants.ContributionRatio)
		personal := PersonalPension(in.MonthlySalary, in.ContributionYears, in.RetirementAge)
		if result.TotalPension != basic+personal {
			t.Errorf("%+v: total %v != basic %v + personal %v", in, result.TotalPension, basic, personal)
		}
	}
}

func TestSummaryIsIdempotent(t *testing.T) {
	first := Summary(12345.67, 9383, 27, 63)
	second := Summary(12345.67, 9383, 27, 63)
	if first != second {
		t.Fatalf("Summary not idempotent: %+v != %+v", first, second)
	}
}

func TestSummaryAgeOutsideTableMatchesAgeSixty(t *testing.T) {
	outside := Summary(8000, 8058, 20, 75)
	atSixty := Summary(8000, 8058, 20, 60)
	if outside.PersonalPension != atSixty.PersonalPension {
		t.Fatalf("age 75 personal pension %v, expected age 60 value %v", outside.PersonalPension, atSixty.PersonalPension)
	}
	if outside.PayoutMonths != 139 {
		t.Fatalf("age 75 payout months = %d, expected 139", outside.PayoutMonths)
	}
}

func TestSummaryZeroSalary(t *testing.T) {
	result := Summary(0, 8058, 15, 60)
	if !math.IsInf(result.ReplacementRate, 1) {
		t.Fatalf("expected +Inf replacement rate for zero salary, got %v", result.ReplacementRate)
	}
}

func TestCalculatorWithCustomTables(t *testing.T) {
	tables, err := reference.New(map[string]float64{"Town": 5000}, map[int]int{59: 200, 60: 100})
	if err != nil {
		t.Fatalf("reference.New() error = %v", err)
	}

	calc := NewCalculator(tables)
	if calc.Tables() != tables {
		t.Fatal("calculator did not keep injected tables")
	}

	result := calc.Calculate(Inputs{MonthlySalary: 10000, AverageSalary: 5000, ContributionYears: 10, RetirementAge: 59})
	expected := PersonalAccountBalance(10000, 10) / 200
	if math.Abs(result.PersonalPension-expected) > tolerance {
		t.Errorf("personal pension = %v, expected %v", result.PersonalPension, expected)
	}
	if result.PayoutMonths != 200 {
		t.Errorf("payout months = %d, expected 200", result.PayoutMonths)
	}
	if got := calc.PayoutMonths(99); got != 100 {
		t.Errorf("fallback payout months = %d, expected 100", got)
	}
}

func TestBelowMinimumContribution(t *testing.T) {
	if !(Inputs{ContributionYears: 14}).BelowMinimumContribution() {
		t.Error("14 years should be below minimum")
	}
	if (Inputs{ContributionYears: 15}).BelowMinimumContribution() {
		t.Error("15 years should not be below minimum")
	}
}
