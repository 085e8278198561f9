// Package reference holds the read-only reference data the pension engine
// depends on: regional average salaries and the payout-months divisor table.
package reference

import (
	"errors"
	"fmt"
	"sort"

	"github.com/iwvelando/pension-calculator/pkg/constants"
)

// ErrUnknownCity is returned when a city has no average-salary entry.
var ErrUnknownCity = errors.New("unknown city")

// Average monthly salary per city (2023).
var cityAverageSalary = map[string]float64{
	"Beijing":             12634,
	"Shanghai":            11396,
	"Guangzhou":           10862,
	"Shenzhen":            11075,
	"Hangzhou":            9383,
	"Nanjing":             9054,
	"Chengdu":             8523,
	"Wuhan":               8151,
	"Xi'an":               7653,
	"Chongqing":           7554,
	"Tianjin":             7547,
	"Suzhou":              9175,
	"Ningbo":              8587,
	"Qingdao":             7852,
	"Changsha":            7654,
	"Zhengzhou":           7461,
	"Xiamen":              8014,
	"Jinan":               7361,
	"Fuzhou":              7284,
	"Dalian":              7156,
	constants.DefaultCity: 8058,
}

// Payout months per retirement age, following the actuarial life-expectancy table.
var paymentMonthsByRetirementAge = map[int]int{
	40: 233, 41: 230, 42: 226, 43: 223, 44: 220,
	45: 216, 46: 212, 47: 207, 48: 204, 49: 199,
	50: 195, 51: 190, 52: 185, 53: 180, 54: 175,
	55: 170, 56: 164, 57: 158, 58: 152, 59: 145,
	60: 139, 61: 132, 62: 125, 63: 117, 64: 109,
	65: 101, 66: 94, 67: 87, 68: 80, 69: 73,
	70: 67,
}

// Tables is an immutable view over the reference data. The zero value is not
// usable; obtain one from Default or New.
type Tables struct {
	cities       map[string]float64
	payoutMonths map[int]int
	cityNames    []string
	ages         []int
}

var defaultTables = mustNew(cityAverageSalary, paymentMonthsByRetirementAge)

// Default returns the process-wide reference tables built at startup.
func Default() *Tables {
	return defaultTables
}

// New builds Tables from the given data. The maps are copied. Payout months
// must be positive and strictly decreasing as age increases, and the
// fallback age must be present.
func New(cities map[string]float64, payoutMonths map[int]int) (*Tables, error) {
	t := &Tables{
		cities:       make(map[string]float64, len(cities)),
		payoutMonths: make(map[int]int, len(payoutMonths)),
	}

	for name, salary := range cities {
		if salary <= 0 {
			return nil, fmt.Errorf("average salary for %s must be positive, got %v", name, salary)
		}
		t.cities[name] = salary
		t.cityNames = append(t.cityNames, name)
	}
	sort.Strings(t.cityNames)

	for age, months := range payoutMonths {
		if months <= 0 {
			return nil, fmt.Errorf("payout months for age %d must be positive, got %d", age, months)
		}
		t.payoutMonths[age] = months
		t.ages = append(t.ages, age)
	}
	sort.Ints(t.ages)

	for i := 1; i < len(t.ages); i++ {
		if t.payoutMonths[t.ages[i]] >= t.payoutMonths[t.ages[i-1]] {
			return nil, fmt.Errorf("payout months must decrease with age: age %d has %d, age %d has %d",
				t.ages[i-1], t.payoutMonths[t.ages[i-1]], t.ages[i], t.payoutMonths[t.ages[i]])
		}
	}

	if _, ok := t.payoutMonths[constants.FallbackRetirementAge]; !ok {
		return nil, fmt.Errorf("payout months table has no entry for fallback age %d", constants.FallbackRetirementAge)
	}

	return t, nil
}

func mustNew(cities map[string]float64, payoutMonths map[int]int) *Tables {
	t, err := New(cities, payoutMonths)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in reference tables: %v", err))
	}
	return t
}

// AverageSalary returns the average salary for a city.
func (t *Tables) AverageSalary(city string) (float64, error) {
	salary, ok := t.cities[city]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	return salary, nil
}

// PayoutMonths returns the payout divisor for a retirement age. Ages without
// a table entry use the divisor of the fallback age; the boolean reports
// whether the age was found.
func (t *Tables) PayoutMonths(retirementAge int) (int, bool) {
	if months, ok := t.payoutMonths[retirementAge]; ok {
		return months, true
	}
	return t.payoutMonths[constants.FallbackRetirementAge], false
}

// Cities returns the city names in lexical order.
func (t *Tables) Cities() []string {
	return append([]string(nil), t.cityNames...)
}

// Ages returns the retirement ages present in the payout table, ascending.
func (t *Tables) Ages() []int {
	return append([]int(nil), t.ages...)
}
