// Package categories holds the budget taxonomy: expense categories with
// their subcategories, income sources, and the essential (non-discretionary)
// set used by the recommendation rules.
package categories

import "sort"

// expenseCategories maps each category to its subcategories.
var expenseCategories = map[string][]string{
	"Children": {
		"Childcare",
		"Medical & Consultations",
		"School Supplies & Toys",
		"School Tuition",
		"Children's Food",
		"Children's Entertainment",
	},
	"Entertainment": {
		"Concerts",
		"Theatre & Opera",
		"Cinema",
		"Music (CDs, Downloads, etc.)",
		"Sports Events",
		"Video/DVD (Purchase)",
		"Video/DVD (Rental)",
		"Books",
	},
	"Food": {
		"Dining Out & Catering",
		"Groceries",
		"Fruits & Vegetables",
		"Meat & Deli",
		"Fish & Seafood",
	},
	"Gifts and Charity": {
		"Religious Donations",
		"Gifts",
		"Gift 1",
		"Gift 2",
	},
	"Housing": {
		"Cable/Satellite",
		"Electricity",
		"Gas",
		"House Cleaning",
		"Home Maintenance & Repairs",
		"Utilities",
		"Natural Gas/Oil",
		"Internet Service",
		"Mobile Phone",
		"Landline Phone",
		"Other Housing Expenses",
		"Waste Removal & Recycling",
		"Water & Bottled Water",
	},
	"Insurance": {
		"Health Insurance",
		"Home Insurance",
		"Life Insurance",
	},
	"Loans": {
		"Personal Loan",
		"Overdraft",
		"Credit Card",
		"Personal Debt",
		"Student Loan",
	},
	"Personal Care": {
		"Clothing",
		"Hygiene Products",
		"Hair Salon & Manicure",
		"Fitness & Beauty Salon",
		"Medical & Consultations",
	},
	"Pets": {
		"Pet Food",
		"Grooming",
		"Veterinary & Medicine",
		"Pet Toys",
	},
	"Savings or Investments": {
		"Investments",
		"Retirement Account",
	},
	"Taxes": {
		"Federal Taxes",
		"Local Taxes",
		"State Taxes",
	},
	"Transportation": {
		"Public Transport & Taxi",
		"Fuel/Gasoline",
		"Car Insurance",
		"License & Registration",
		"Car Maintenance",
		"Parking",
		"Vehicle Taxes",
	},
}

// incomeSources is the flat list of income categories.
var incomeSources = []string{
	"Salary",
	"Bonus",
	"Freelance/Business",
	"Rental Income",
	"Investments",
	"Gifts & Inheritance",
	"Other Income",
}

// essentialCategories are non-discretionary categories excluded from
// "reduce spending" suggestions.
var essentialCategories = []string{
	"Housing",
	"Insurance",
	"Loans",
}

// All returns every expense category name, sorted.
func All() []string {
	out := make([]string, 0, len(expenseCategories))
	for c := range expenseCategories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Subcategories returns the subcategories for a category. Unknown categories
// return nil.
func Subcategories(category string) []string {
	subs, ok := expenseCategories[category]
	if !ok {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// IsValid reports whether the category exists in the taxonomy.
func IsValid(category string) bool {
	_, ok := expenseCategories[category]
	return ok
}

// IsValidSubcategory reports whether the subcategory belongs to the category.
// An empty subcategory is always valid.
func IsValidSubcategory(category, subcategory string) bool {
	if subcategory == "" {
		return true
	}
	for _, s := range expenseCategories[category] {
		if s == subcategory {
			return true
		}
	}
	return false
}

// IncomeSources returns the income source names.
func IncomeSources() []string {
	out := make([]string, len(incomeSources))
	copy(out, incomeSources)
	return out
}

// IsValidIncomeSource reports whether the source is a known income category.
func IsValidIncomeSource(source string) bool {
	for _, s := range incomeSources {
		if s == source {
			return true
		}
	}
	return false
}

// Essential returns the default essential category set.
func Essential() []string {
	out := make([]string, len(essentialCategories))
	copy(out, essentialCategories)
	return out
}
