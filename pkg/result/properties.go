package result

// CategoryName is the reserved property name holding the multi-valued
// category list. It is the only name that may appear more than once in
// a PropertyBag; every other name is single-valued.
const CategoryName = "Category"

// Property is one name/value entry of a PropertyBag.
type Property struct {
	Name  string
	Value string
}

// PropertyBag is an insertion-ordered collection of test properties.
// Iteration order is insertion order, which keeps serialized output
// byte-stable across runs.
type PropertyBag struct {
	entries []Property
}

// NewPropertyBag creates an empty bag.
func NewPropertyBag() *PropertyBag {
	return &PropertyBag{}
}

// Set stores a single-valued property, replacing the value of an
// existing entry with the same name in place. Setting CategoryName is
// equivalent to AddCategory.
func (b *PropertyBag) Set(name, value string) {
	if name == CategoryName {
		b.AddCategory(value)
		return
	}
	for i := range b.entries {
		if b.entries[i].Name == name {
			b.entries[i].Value = value
			return
		}
	}
	b.entries = append(b.entries, Property{Name: name, Value: value})
}

// AddCategory appends one category value. Each call produces one more
// rendered property entry sharing CategoryName.
func (b *PropertyBag) AddCategory(value string) {
	b.entries = append(b.entries, Property{Name: CategoryName, Value: value})
}

// Len returns the number of entries the bag renders. A nil bag is empty.
func (b *PropertyBag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Entries returns the properties in insertion order. The slice is
// shared with the bag and must not be mutated by the caller.
func (b *PropertyBag) Entries() []Property {
	if b == nil {
		return nil
	}
	return b.entries
}
