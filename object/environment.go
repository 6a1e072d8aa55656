package object

// Environments are composed by prototypal layering: a child environment
// delegates unresolved lookups to its Ext parent. Mutation writes only to
// the innermost layer, so a closure's captured frame can never be disturbed
// by bindings made further in.

type Environment struct {
	Store map[string]Object
	Ext   *Environment
}

func NewEnvironment() *Environment {
	return &Environment{Store: make(map[string]Object)}
}

func NewChildEnvironment(ext *Environment) *Environment {
	return &Environment{Store: make(map[string]Object), Ext: ext}
}

func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.Store[name]
	if ok || e.Ext == nil {
		return obj, ok
	}
	return e.Ext.Get(name)
}

func (e *Environment) Exists(name string) bool {
	_, ok := e.Store[name]
	if ok || e.Ext == nil {
		return ok
	}
	return e.Ext.Exists(name)
}

func (e *Environment) Set(name string, val Object) Object {
	e.Store[name] = val
	return val
}
