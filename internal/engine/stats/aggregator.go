package stats

import (
	"math/big"
	"strconv"

	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
)

// Aggregator sums modifiers per canonical stat key
type Aggregator struct {
	canon  *Canonicalizer
	hidden map[string]bool
}

// AggregatorConfig holds the dependencies of an Aggregator
type AggregatorConfig struct {
	// Canonicalizer defaults to one over DefaultSynonymTable
	Canonicalizer *Canonicalizer
	// HiddenKeys are stat names flagged in StatTotals.Hidden once canonicalized;
	// defaults to hp, hpMax, mana, manaMax
	HiddenKeys []string
}

// NewAggregator creates an aggregator. A nil config uses the defaults.
func NewAggregator(cfg *AggregatorConfig) *Aggregator {
	if cfg == nil {
		cfg = &AggregatorConfig{}
	}

	canon := cfg.Canonicalizer
	if canon == nil {
		canon = NewCanonicalizer(nil)
	}

	hiddenKeys := cfg.HiddenKeys
	if hiddenKeys == nil {
		hiddenKeys = defaultHiddenKeys
	}
	hidden := make(map[string]bool, len(hiddenKeys))
	for _, key := range hiddenKeys {
		if canonical := canon.Canonicalize(key); canonical != "" {
			hidden[canonical] = true
		}
	}

	return &Aggregator{canon: canon, hidden: hidden}
}

// exactSum adds decimal values without rounding so a total does not depend on
// the order of its terms. The zero value is an empty sum.
type exactSum struct {
	r big.Rat
}

func (s *exactSum) add(v float64) {
	var term big.Rat
	if _, ok := term.SetString(strconv.FormatFloat(v, 'g', -1, 64)); !ok {
		term.SetFloat64(v)
	}
	s.r.Add(&s.r, &term)
}

func (s *exactSum) isZero() bool {
	return s.r.Sign() == 0
}

func (s *exactSum) value() float64 {
	f, _ := s.r.Float64()
	return f
}

type groupKey struct {
	stat string
	typ  inventory.ModifierType
}

// AggregateAcrossTypes groups modifiers by canonical stat key and type and sums
// them. The label of a group is the stat text of its first member. Groups are
// returned in first-seen order; groups summing to exactly zero are dropped.
func (a *Aggregator) AggregateAcrossTypes(mods []inventory.CanonicalModifier) []inventory.AggregatedModifier {
	type group struct {
		label string
		sum   exactSum
	}

	order := make([]groupKey, 0, len(mods))
	groups := make(map[groupKey]*group, len(mods))

	for _, m := range mods {
		key := groupKey{stat: a.canon.Canonicalize(m.Stat), typ: m.Type}
		g, ok := groups[key]
		if !ok {
			g = &group{label: m.Stat}
			groups[key] = g
			order = append(order, key)
		}
		g.sum.add(m.Value)
	}

	out := make([]inventory.AggregatedModifier, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if g.sum.isZero() {
			continue
		}
		out = append(out, inventory.AggregatedModifier{Stat: g.label, Type: key.typ, Value: g.sum.value()})
	}
	return out
}

// ComputeTotals resolves every item and sums the results per canonical stat key.
// Flat and percent values share one total per key; only flat values count
// toward TotalPoints. Hidden keys stay in the result, flagged. Items are never
// modified and an item with no usable data simply contributes nothing.
func (a *Aggregator) ComputeTotals(items []inventory.Item) inventory.StatTotals {
	totals := inventory.NewStatTotals()
	sums := make(map[string]*exactSum)
	var points exactSum

	for _, item := range items {
		source := item.DisplayName()
		quantity := item.EquippedQuantity()

		for _, m := range ResolveModifiers(item) {
			key := a.canon.Canonicalize(m.Stat)

			sum, seen := sums[key]
			if !seen {
				sum = &exactSum{}
				sums[key] = sum
				totals.Keys = append(totals.Keys, key)
				if a.hidden[key] {
					totals.Hidden[key] = true
				}
			}

			sum.add(m.Value)
			if m.Type == inventory.ModifierTypeFlat {
				points.add(m.Value)
			}
			totals.Breakdown[key] = append(totals.Breakdown[key], inventory.Contribution{
				Stat:     m.Stat,
				Value:    m.Value,
				Type:     m.Type,
				Source:   source,
				Quantity: quantity,
			})
		}
	}

	for key, sum := range sums {
		totals.Totals[key] = sum.value()
	}
	totals.TotalPoints = points.value()
	return totals
}
