package arena

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/quant"
)

func TestBuildRosterDealsGeneratorsFirst(t *testing.T) {
	cases := []struct {
		count      int
		generators int
	}{
		{3, 2},
		{4, 2},
		{5, 3},
		{10, 5},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("count=%d", tc.count), func(t *testing.T) {
			roster := buildRoster(tc.count)
			require.Len(t, roster, tc.count)

			gens := 0
			for i, a := range roster {
				assert.Equal(t, fmt.Sprintf("agent-%d", i+1), a.ID)
				assert.True(t, a.Role.IsValid())
				if a.IsGenerator() {
					gens++
					assert.Less(t, i, tc.generators, "generators must occupy the leading seats")
				}
			}
			assert.Equal(t, tc.generators, gens)
		})
	}
}

func TestBuildRosterCyclesSupportRoles(t *testing.T) {
	roster := buildRoster(10)

	support := roster[5:]
	wantRoles := []models.AgentRole{
		models.AgentRoleStrategyReviewer,
		models.AgentRoleRiskAnalyst,
		models.AgentRoleMarketSentiment,
		models.AgentRoleQuantResearcher,
		models.AgentRoleStrategyReviewer,
	}
	for i, a := range support {
		assert.Equal(t, wantRoles[i], a.Role)
	}

	// The wrapped reviewer gets a distinct display name.
	assert.Equal(t, "Strategy Reviewer 1", support[0].Name)
	assert.Equal(t, "Strategy Reviewer 2", support[4].Name)

	names := map[string]bool{}
	for _, a := range roster {
		assert.False(t, names[a.Name], "duplicate roster name %q", a.Name)
		names[a.Name] = true
	}
}

func TestBuildRosterIsDeterministic(t *testing.T) {
	assert.Equal(t, buildRoster(7), buildRoster(7))
}

func TestSeedPaletteDealsDistinctIndicators(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < len(seedPalette); i++ {
		name, logic, rules := seedFor(i)
		assert.NotEmpty(t, name)
		assert.NotEmpty(t, logic)
		assert.True(t, quant.KnownIndicator(rules.Indicator), "seed %d uses unknown indicator %q", i, rules.Indicator)
		assert.False(t, seen[rules.Indicator], "seed %d repeats indicator %q", i, rules.Indicator)
		seen[rules.Indicator] = true
	}

	// Past the palette the deal wraps around.
	firstName, _, firstRules := seedFor(0)
	wrapName, _, wrapRules := seedFor(len(seedPalette))
	assert.Equal(t, firstName, wrapName)
	assert.Equal(t, firstRules, wrapRules)
}
