package reflection

// Class is a reflection database entry for one class name: its known
// properties, keyed by serialized name, and whether instances of it are
// treated as services (object-format 1 on the wire).
type Class struct {
	Name       string
	IsService  bool
	Properties map[string]*Property
}

// NewClass returns an empty Class with the given name.
func NewClass(name string) *Class {
	return &Class{Name: name, Properties: make(map[string]*Property)}
}

// AddProperty registers p under the class, keyed by p.Name. It returns the
// class, so calls can be chained.
func (c *Class) AddProperty(p *Property) *Class {
	c.Properties[p.Name] = p
	return c
}
