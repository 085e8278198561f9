package reference

import (
	"errors"
	"testing"

	"github.com/iwvelando/pension-calculator/pkg/constants"
)

func TestDefaultTables(t *testing.T) {
	tables := Default()

	if got := len(tables.Cities()); got != 21 {
		t.Fatalf("expected 21 cities, got %d", got)
	}

	ages := tables.Ages()
	if len(ages) != 31 || ages[0] != 40 || ages[len(ages)-1] != 70 {
		t.Fatalf("expected ages 40..70, got %v", ages)
	}

	salary, err := tables.AverageSalary(constants.DefaultCity)
	if err != nil {
		t.Fatalf("AverageSalary(%q) error = %v", constants.DefaultCity, err)
	}
	if salary != 8058 {
		t.Errorf("expected national average 8058, got %v", salary)
	}
}

func TestPayoutMonths(t *testing.T) {
	tests := []struct {
		name      string
		age       int
		expected  int
		wantFound bool
	}{
		{"Youngest entry", 40, 233, true},
		{"Fallback age", 60, 139, true},
		{"Age 63", 63, 117, true},
		{"Oldest entry", 70, 67, true},
		{"Below table", 39, constants.FallbackPayoutMonths, false},
		{"Above table", 75, constants.FallbackPayoutMonths, false},
		{"Negative age", -1, constants.FallbackPayoutMonths, false},
	}

	tables := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months, found := tables.PayoutMonths(tt.age)
			if months != tt.expected || found != tt.wantFound {
				t.Errorf("PayoutMonths(%d) = (%d, %v), expected (%d, %v)", tt.age, months, found, tt.expected, tt.wantFound)
			}
		})
	}
}

func TestPayoutMonthsStrictlyDecreasing(t *testing.T) {
	tables := Default()
	ages := tables.Ages()
	for i := 1; i < len(ages); i++ {
		prev, _ := tables.PayoutMonths(ages[i-1])
		curr, _ := tables.PayoutMonths(ages[i])
		if curr >= prev {
			t.Fatalf("payout months not decreasing at age %d: %d >= %d", ages[i], curr, prev)
		}
	}
}

func TestUnknownCity(t *testing.T) {
	_, err := Default().AverageSalary("Atlantis")
	if !errors.Is(err, ErrUnknownCity) {
		t.Fatalf("expected ErrUnknownCity, got %v", err)
	}
}

func TestNewRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name   string
		cities map[string]float64
		months map[int]int
	}{
		{
			name:   "Non-positive salary",
			cities: map[string]float64{"A": 0},
			months: map[int]int{60: 139},
		},
		{
			name:   "Zero divisor",
			cities: map[string]float64{"A": 1},
			months: map[int]int{59: 0, 60: 139},
		},
		{
			name:   "Increasing divisor",
			cities: map[string]float64{"A": 1},
			months: map[int]int{60: 139, 61: 140},
		},
		{
			name:   "Missing fallback age",
			cities: map[string]float64{"A": 1},
			months: map[int]int{61: 132},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cities, tt.months); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestTablesAreCopies(t *testing.T) {
	cities := map[string]float64{"A": 100}
	tables, err := New(cities, map[int]int{60: 139})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cities["A"] = 1
	if salary, _ := tables.AverageSalary("A"); salary != 100 {
		t.Fatalf("tables changed after source map mutation: %v", salary)
	}

	names := tables.Cities()
	names[0] = "B"
	if tables.Cities()[0] != "A" {
		t.Fatal("Cities() exposed internal slice")
	}
}

func TestSources(t *testing.T) {
	tables := Default()

	tests := []struct {
		name       string
		source     AverageSalarySource
		wantSalary float64
		wantCity   string
		wantErr    bool
	}{
		{"City", CitySource{Name: "Beijing"}, 12634, "Beijing", false},
		{"Unknown city", CitySource{Name: "Nowhere"}, 0, "", true},
		{"Custom", CustomSource{Value: 9500}, 9500, constants.CustomCity, false},
		{"Custom zero", CustomSource{Value: 0}, 0, "", true},
		{"Custom negative", CustomSource{Value: -1}, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salary, city, err := tt.source.Resolve(tables)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if salary != tt.wantSalary || city != tt.wantCity {
				t.Errorf("Resolve() = (%v, %q), expected (%v, %q)", salary, city, tt.wantSalary, tt.wantCity)
			}
		})
	}
}

func TestSourceFor(t *testing.T) {
	if _, ok := SourceFor(constants.CustomCity, 9000).(CustomSource); !ok {
		t.Error("custom sentinel should select CustomSource")
	}
	if _, ok := SourceFor("", 9000).(CustomSource); !ok {
		t.Error("empty city with salary should select CustomSource")
	}
	if src, ok := SourceFor("", 0).(CitySource); !ok || src.Name != constants.DefaultCity {
		t.Errorf("empty city without salary should select the default city, got %#v", src)
	}
	if src, ok := SourceFor("Wuhan", 9000).(CitySource); !ok || src.Name != "Wuhan" {
		t.Errorf("named city should select CitySource, got %#v", src)
	}
}
