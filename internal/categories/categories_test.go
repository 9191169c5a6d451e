package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 12)
	assert.Contains(t, all, "Food")
	assert.Contains(t, all, "Housing")
	assert.Contains(t, all, "Savings or Investments")

	// sorted ascending
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i])
	}
}

func TestSubcategories(t *testing.T) {
	subs := Subcategories("Food")
	require.NotEmpty(t, subs)
	assert.Contains(t, subs, "Groceries")
	assert.Contains(t, subs, "Dining Out & Catering")

	assert.Nil(t, Subcategories("Nonexistent"))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Transportation"))
	assert.True(t, IsValid("Gifts and Charity"))
	assert.False(t, IsValid("transportation"))
	assert.False(t, IsValid(""))
}

func TestIsValidSubcategory(t *testing.T) {
	assert.True(t, IsValidSubcategory("Food", "Groceries"))
	assert.True(t, IsValidSubcategory("Food", ""))
	assert.False(t, IsValidSubcategory("Food", "Mortgage or Rent"))
	assert.False(t, IsValidSubcategory("Nonexistent", "Groceries"))
}

func TestIncomeSources(t *testing.T) {
	sources := IncomeSources()
	require.Len(t, sources, 7)
	assert.Contains(t, sources, "Salary")
	assert.True(t, IsValidIncomeSource("Bonus"))
	assert.False(t, IsValidIncomeSource("Lottery"))
}

func TestEssential(t *testing.T) {
	essential := Essential()
	assert.ElementsMatch(t, []string{"Housing", "Insurance", "Loans"}, essential)

	// mutation of the returned slice must not leak back
	essential[0] = "Food"
	assert.Contains(t, Essential(), "Housing")
}
