package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanPrice(t *testing.T) {
	assert.Equal(t, "$0", FreePlan.Price())
	assert.False(t, FreePlan.IsPaid())

	pro := Plan{ID: PlanPro, Amount: 1200, Currency: "eur"}
	assert.Equal(t, "€12", pro.Price())
	assert.True(t, pro.IsPaid())

	unknown := Plan{Amount: 500, Currency: "chf"}
	assert.Equal(t, "$5", unknown.Price())
}
