package interp

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Instance owns a reference to its class and a mapping from field name to
// value. A field read falls through to method lookup on the class; a
// method found there is bound to the instance before being returned.
type Instance struct {
	Class  *Class
	fields *swiss.Map[string, Value]
}

// NewInstance creates an instance of cls with an empty field set.
func NewInstance(cls *Class) *Instance {
	return &Instance{Class: cls, fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return fmt.Sprintf("<instance %s>", i.Class.ClassName) }
func (i *Instance) Type() string   { return "instance" }

// Get implements property access: an own field wins over a method; a
// method is bound to the instance before being returned.
func (i *Instance) Get(name string) (Value, error) {
	if v, ok := i.fields.Get(name); ok {
		return v, nil
	}
	if method := i.Class.FindMethod(name); method != nil {
		return method.Bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property [%s]", name)
}

// Set stores value under name, creating the field if absent.
func (i *Instance) Set(name string, value Value) {
	i.fields.Put(name, value)
}
