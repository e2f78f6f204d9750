package licensing

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"backstage/internal/domain"
)

// neutral is the multiplier of any key missing from a table.
const neutral = 1.0

// Tables are the multiplier lookup tables of the fee calculator.
type Tables struct {
	Territory    map[string]float64 `yaml:"territory"`
	Duration     map[string]float64 `yaml:"duration"`
	MediaType    map[string]float64 `yaml:"media_type"`
	Exclusive    float64            `yaml:"exclusive"`
	NonExclusive float64            `yaml:"non_exclusive"`
}

func DefaultTables() Tables {
	return Tables{
		Territory: map[string]float64{
			"worldwide":     3.0,
			"north_america": 2.0,
			"europe":        1.8,
			"latin_america": 1.5,
			"brazil":        1.0,
			"asia":          1.7,
			"other":         1.2,
		},
		Duration: map[string]float64{
			"1_month":   0.5,
			"3_months":  0.7,
			"6_months":  0.85,
			"1_year":    1.0,
			"2_years":   1.5,
			"3_years":   2.0,
			"5_years":   2.5,
			"perpetual": 4.0,
		},
		MediaType: map[string]float64{
			"film":       2.5,
			"commercial": 2.0,
			"tv":         1.5,
			"game":       1.8,
			"web":        0.8,
			"podcast":    0.6,
			"other":      1.0,
		},
		Exclusive:    2.0,
		NonExclusive: 1.0,
	}
}

// LoadTables reads multiplier overrides from a YAML file and merges them over
// the defaults. Keys absent from the file keep their default value.
func LoadTables(path string) (Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read fee tables: %w", err)
	}
	var over struct {
		Territory    map[string]float64 `yaml:"territory"`
		Duration     map[string]float64 `yaml:"duration"`
		MediaType    map[string]float64 `yaml:"media_type"`
		Exclusive    *float64           `yaml:"exclusive"`
		NonExclusive *float64           `yaml:"non_exclusive"`
	}
	if err := yaml.Unmarshal(raw, &over); err != nil {
		return t, fmt.Errorf("parse fee tables %s: %w", path, err)
	}
	if err := merge(t.Territory, over.Territory); err != nil {
		return t, fmt.Errorf("territory: %w", err)
	}
	if err := merge(t.Duration, over.Duration); err != nil {
		return t, fmt.Errorf("duration: %w", err)
	}
	if err := merge(t.MediaType, over.MediaType); err != nil {
		return t, fmt.Errorf("media_type: %w", err)
	}
	if over.Exclusive != nil {
		if *over.Exclusive <= 0 {
			return t, fmt.Errorf("exclusive multiplier must be positive")
		}
		t.Exclusive = *over.Exclusive
	}
	if over.NonExclusive != nil {
		if *over.NonExclusive <= 0 {
			return t, fmt.Errorf("non_exclusive multiplier must be positive")
		}
		t.NonExclusive = *over.NonExclusive
	}
	return t, nil
}

func merge(dst, src map[string]float64) error {
	for k, v := range src {
		if v <= 0 {
			return fmt.Errorf("multiplier for %q must be positive", k)
		}
		dst[normalizeKey(k)] = v
	}
	return nil
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func lookup(table map[string]float64, key string) float64 {
	if m, ok := table[normalizeKey(key)]; ok {
		return m
	}
	return neutral
}

// Calculator prices sync licenses. It holds no state besides its tables and
// is safe for concurrent use.
type Calculator struct {
	tables Tables
}

func NewCalculator(t Tables) *Calculator {
	return &Calculator{tables: t}
}

// Calculate multiplies the base fee by the territory, duration, media and
// exclusivity multipliers. Unknown keys count as 1.0 and a negative base fee
// as zero, so every input yields a breakdown.
func (c *Calculator) Calculate(p domain.FeeParams) domain.FeeBreakdown {
	base := p.BaseFee
	if base.IsNegative() {
		base = decimal.Zero
	}
	excl := c.tables.NonExclusive
	if p.Exclusivity {
		excl = c.tables.Exclusive
	}
	out := domain.FeeBreakdown{
		BaseFee:               base,
		TerritoryMultiplier:   lookup(c.tables.Territory, p.Territory),
		DurationMultiplier:    lookup(c.tables.Duration, p.Duration),
		MediaTypeMultiplier:   lookup(c.tables.MediaType, p.MediaType),
		ExclusivityMultiplier: excl,
	}
	steps := []struct {
		name string
		m    float64
	}{
		{"Territory", out.TerritoryMultiplier},
		{"Duration", out.DurationMultiplier},
		{"Media", out.MediaTypeMultiplier},
		{"Exclusivity", out.ExclusivityMultiplier},
	}

	running := base
	out.Breakdown = append(out.Breakdown, domain.FeeComponent{Component: "Base", Value: base.Round(2), Multiplier: neutral})
	for _, st := range steps {
		running = running.Mul(decimal.NewFromFloat(st.m))
		out.Breakdown = append(out.Breakdown, domain.FeeComponent{Component: st.name, Value: running.Round(2), Multiplier: st.m})
	}
	out.TotalFee = running.Round(2)
	return out
}
