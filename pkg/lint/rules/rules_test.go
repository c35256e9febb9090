package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/leaplint/pkg/lint"
	_ "github.com/leapstack-labs/leaplint/pkg/lint/rules"
)

func TestAllRulesRegistered(t *testing.T) {
	var ids []string
	for _, info := range lint.AllRules() {
		ids = append(ids, info.ID)
		assert.NotEmpty(t, info.Description, info.ID)
		assert.NotEmpty(t, info.Rationale, info.ID)
		assert.NotEmpty(t, info.BadExample, info.ID)
		assert.NotEmpty(t, info.GoodExample, info.ID)
	}
	assert.Equal(t, []string{"LT08", "LT12"}, ids)
}
