package reflection

// Database is an immutable, freely shareable collection of Class
// descriptors. Once built, a Database is never mutated, which is what lets
// a single instance be handed to many concurrent codec calls — unlike the
// teacher's own package-global, mutable API variable (see file.go's
// RegisterAPI), which only ever supports a single writer.
type Database struct {
	classes map[string]*Class
}

// New returns an empty Database. Use AddClass to populate it before
// sharing it across goroutines; Database itself does not synchronize
// writes.
func New() *Database {
	return &Database{classes: make(map[string]*Class)}
}

// AddClass registers c in the database, returning the database so calls
// can be chained.
func (d *Database) AddClass(c *Class) *Database {
	d.classes[c.Name] = c
	return d
}

// Class returns the descriptor for the named class, if known.
func (d *Database) Class(name string) (*Class, bool) {
	c, ok := d.classes[name]
	return c, ok
}

// Resolve looks up the canonical descriptor for a serialized property name
// under a class. It reports false if either the class or the property is
// unknown, in which case the caller falls back to the wire type's default
// canonical variant per the unknown-property rule.
func (d *Database) Resolve(class, serializedName string) (*Property, bool) {
	c, ok := d.classes[class]
	if !ok {
		return nil, false
	}
	p, ok := c.Properties[serializedName]
	return p, ok
}

// IsService reports whether class is known and marked as a service.
func (d *Database) IsService(class string) bool {
	c, ok := d.classes[class]
	return ok && c.IsService
}
