package entity

import "github.com/google/uuid"

// IDFunc produces a fresh identity token.
type IDFunc func() string

// DefaultIDFunc generates random UUIDv4 strings.
var DefaultIDFunc IDFunc = uuid.NewString

// Person is an immutable roster entry identified by its uuid.
type Person struct {
	name string
	age  int
	uuid string
}

// PersonOption customizes NewPerson.
type PersonOption func(*personOptions)

type personOptions struct {
	uuid   string
	idFunc IDFunc
}

// WithUUID supplies an existing identity instead of generating one.
func WithUUID(id string) PersonOption {
	return func(o *personOptions) { o.uuid = id }
}

// WithIDFunc overrides the generator used when no uuid is supplied.
func WithIDFunc(fn IDFunc) PersonOption {
	return func(o *personOptions) { o.idFunc = fn }
}

// NewPerson builds a person. The uuid is taken from WithUUID when given,
// otherwise it is generated once here and never changes afterwards.
func NewPerson(name string, age int, opts ...PersonOption) Person {
	o := personOptions{idFunc: DefaultIDFunc}
	for _, opt := range opts {
		opt(&o)
	}
	id := o.uuid
	if id == "" {
		gen := o.idFunc
		if gen == nil {
			gen = DefaultIDFunc
		}
		id = gen()
	}
	return Person{name: name, age: age, uuid: id}
}

// Accessors for the immutable fields.
func (p Person) Name() string { return p.name }
func (p Person) Age() int     { return p.age }
func (p Person) UUID() string { return p.uuid }

// PersonChanges lists the fields to replace in Updated. Nil means keep.
type PersonChanges struct {
	Name *string
	Age  *int
}

// ChangeName is shorthand for PersonChanges{Name: &name}.
func ChangeName(name string) PersonChanges {
	return PersonChanges{Name: &name}
}

// ChangeAge is shorthand for PersonChanges{Age: &age}.
func ChangeAge(age int) PersonChanges {
	return PersonChanges{Age: &age}
}

// Changes builds a PersonChanges replacing both fields.
func Changes(name string, age int) PersonChanges {
	return PersonChanges{Name: &name, Age: &age}
}

// IsEmpty reports whether no field would be replaced.
func (c PersonChanges) IsEmpty() bool {
	return c.Name == nil && c.Age == nil
}

// Updated returns a copy of p with the supplied fields replaced.
func (p Person) Updated(c PersonChanges) Person {
	if c.Name != nil {
		p.name = *c.Name
	}
	if c.Age != nil {
		p.age = *c.Age
	}
	return p
}

// Equal compares people by uuid only.
func (p Person) Equal(other Person) bool {
	return p.uuid == other.uuid
}
