package types

// Category describes how a transaction category renders: an icon token and
// a color token consumed by display logic. The built-in catalog below is
// fixed; user-defined categories are permitted but not required.
type Category struct {
	ID    string `json:"id"`
	Type  string `json:"type"` // TypeExpense or TypeIncome.
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// DefaultExpenseCategories is the built-in expense catalog, seeded on
// first run.
var DefaultExpenseCategories = []Category{
	{ID: "1", Type: TypeExpense, Name: "Food & Dining", Icon: "Utensils", Color: "#F87171"},
	{ID: "2", Type: TypeExpense, Name: "Transportation", Icon: "Car", Color: "#60A5FA"},
	{ID: "3", Type: TypeExpense, Name: "Shopping", Icon: "ShoppingBag", Color: "#F472B6"},
	{ID: "4", Type: TypeExpense, Name: "Bills & Utilities", Icon: "CreditCard", Color: "#FBBF24"},
	{ID: "5", Type: TypeExpense, Name: "Entertainment", Icon: "Film", Color: "#A78BFA"},
	{ID: "6", Type: TypeExpense, Name: "Healthcare", Icon: "Activity", Color: "#34D399"},
	{ID: "7", Type: TypeExpense, Name: "Education", Icon: "BookOpen", Color: "#818CF8"},
	{ID: "8", Type: TypeExpense, Name: "Travel", Icon: "Plane", Color: "#FB923C"},
	{ID: "9", Type: TypeExpense, Name: "Rent/Mortgage", Icon: "Home", Color: "#4ADE80"},
	{ID: "10", Type: TypeExpense, Name: "Other", Icon: "MoreHorizontal", Color: "#9CA3AF"},
}

// DefaultIncomeCategories is the built-in income catalog, seeded on
// first run.
var DefaultIncomeCategories = []Category{
	{ID: "11", Type: TypeIncome, Name: "Salary", Icon: "Briefcase", Color: "#10B981"},
	{ID: "12", Type: TypeIncome, Name: "Freelance", Icon: "Laptop", Color: "#3B82F6"},
	{ID: "13", Type: TypeIncome, Name: "Business", Icon: "TrendingUp", Color: "#8B5CF6"},
	{ID: "14", Type: TypeIncome, Name: "Investment", Icon: "PieChart", Color: "#F59E0B"},
	{ID: "15", Type: TypeIncome, Name: "Gift/Bonus", Icon: "Gift", Color: "#EC4899"},
	{ID: "16", Type: TypeIncome, Name: "Other", Icon: "MoreHorizontal", Color: "#9CA3AF"},
}

// UncategorizedCategory is the fallback rendering for a category name that
// does not resolve against the catalog. Unknown names never fail.
var UncategorizedCategory = Category{
	ID:    "0",
	Name:  "Uncategorized",
	Icon:  "HelpCircle",
	Color: "#9CA3AF",
}

// LookupCategory resolves a (type, name) pair against the built-in catalog.
// Unknown names return UncategorizedCategory and false.
func LookupCategory(typ, name string) (Category, bool) {
	catalog := DefaultExpenseCategories
	if typ == TypeIncome {
		catalog = DefaultIncomeCategories
	}
	for _, c := range catalog {
		if c.Name == name {
			return c, true
		}
	}
	return UncategorizedCategory, false
}
