package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/stockpile/internal/domain"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// unitFlag accepts only units inventory items may be counted in.
type unitFlag struct {
	unit *domain.Unit
}

var _ pflag.Value = (*unitFlag)(nil)

func newUnitFlag(u *domain.Unit) *unitFlag {
	return &unitFlag{unit: u}
}

func (f *unitFlag) String() string {
	if f.unit == nil {
		return ""
	}
	return string(*f.unit)
}

func (f *unitFlag) Set(s string) error {
	u := domain.Unit(strings.ToLower(strings.TrimSpace(s)))
	if !domain.ValidUnits[u] {
		return fmt.Errorf("must be one of %s", strings.Join(unitNames(), ", "))
	}
	*f.unit = u
	return nil
}

func (f *unitFlag) Type() string { return "unit" }

func unitNames() []string {
	names := make([]string, 0, len(domain.ValidUnits))
	for u := range domain.ValidUnits {
		names = append(names, string(u))
	}
	sort.Strings(names)
	return names
}

// optionalFloat is a float flag that stays nil until set. "default" resets
// it to nil.
type optionalFloat struct {
	value **float64
}

var _ pflag.Value = optionalFloat{}

func (f optionalFloat) String() string {
	if f.value == nil || *f.value == nil {
		return "default"
	}
	return strconv.FormatFloat(**f.value, 'f', -1, 64)
}

func (f optionalFloat) Set(s string) error {
	if strings.EqualFold(s, "default") {
		*f.value = nil
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number or \"default\"")
	}
	*f.value = &v
	return nil
}

func (f optionalFloat) Type() string { return "float|default" }

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return &t, nil
}

func joinUnits() string {
	return strings.Join(unitNames(), "|")
}
