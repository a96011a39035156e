package types

// Standard collection names for Store.Collection.
const (
	NotesCollection      = "notes"
	ExpensesCollection   = "expenses"
	CategoriesCollection = "categories"
	SettingsCollection   = "settings"
	LinksCollection      = "links"
	PasswordsCollection  = "passwords"
	AuthCollection       = "auth"
)

// StandardCollectionNames lists all collection names for enumeration.
var StandardCollectionNames = []string{
	NotesCollection,
	ExpensesCollection,
	CategoriesCollection,
	SettingsCollection,
	LinksCollection,
	PasswordsCollection,
	AuthCollection,
}
