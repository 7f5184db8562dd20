package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Saichiiro/astoria-sub001/internal/engine/stats"
	"github.com/Saichiiro/astoria-sub001/internal/testutils"
)

func TestWritePanel(t *testing.T) {
	totals := stats.New(nil).ComputeTotals(testutils.CreateTestInventory())

	var visible bytes.Buffer
	writePanel(&visible, totals, false)

	assert.Equal(t, `puissancemagie: +2
  +2 Puissance Magie 1 (Sceptre)
maitrisemagie: +1
  +1 Maitrise Magie 1 (Sceptre)
force: +1
  +1 Force (Anneau)
vitesse: +7
  +5% Vitesse (Anneau)
  +2 vitesse (Bottes)
Total points: +16
`, visible.String())

	var all bytes.Buffer
	writePanel(&all, totals, true)
	assert.Contains(t, all.String(), "hp (hidden): +10\n  +10 PV (Potion x3)\n")
}

func TestWritePanel_Empty(t *testing.T) {
	var out bytes.Buffer
	writePanel(&out, stats.New(nil).ComputeTotals(nil), false)
	assert.Equal(t, "No stat bonuses.\n", out.String())
}
