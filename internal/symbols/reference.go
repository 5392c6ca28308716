package symbols

import "fmt"

// Key is a hashable symbol table key. Implementations must be
// comparable structs: the map compares keys with ==.
type Key interface {
	Hash() uint32
}

// Reference identifies a function or type symbol. Module is empty
// for local (unqualified) references; module names are never empty,
// so local and qualified keys can not collide.
type Reference struct {
	Module string
	Name   string
	Arity  int
}

// LocalRef builds an unqualified reference.
func LocalRef(name string, arity int) Reference {
	return Reference{Name: name, Arity: arity}
}

// QualifiedRef builds a module-qualified reference.
func QualifiedRef(module, name string, arity int) Reference {
	return Reference{Module: module, Name: name, Arity: arity}
}

// IsLocal reports whether the reference is unqualified.
func (r Reference) IsLocal() bool { return r.Module == "" }

func (r Reference) String() string {
	if r.IsLocal() {
		return fmt.Sprintf("%s/%d", r.Name, r.Arity)
	}
	return fmt.Sprintf("%s:%s/%d", r.Module, r.Name, r.Arity)
}

func (r Reference) Hash() uint32 {
	h := fnvOffset
	h = fnvString(h, r.Module)
	h = fnvByte(h, 0)
	h = fnvString(h, r.Name)
	h = fnvByte(h, 0)
	return fnvInt(h, r.Arity)
}

// OperatorKey identifies an operator by name and arity; operators
// are never module-qualified.
type OperatorKey struct {
	Name  string
	Arity int
}

func (k OperatorKey) String() string {
	return fmt.Sprintf("%s/%d", k.Name, k.Arity)
}

func (k OperatorKey) Hash() uint32 {
	h := fnvOffset
	h = fnvByte(h, 'o') // keep operator hashes apart from references
	h = fnvString(h, k.Name)
	h = fnvByte(h, 0)
	return fnvInt(h, k.Arity)
}

// FNV-1a
const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619
)

func fnvByte(h uint32, b byte) uint32 {
	return (h ^ uint32(b)) * fnvPrime
}

func fnvString(h uint32, s string) uint32 {
	for i := 0; i < len(s); i++ {
		h = fnvByte(h, s[i])
	}
	return h
}

func fnvInt(h uint32, n int) uint32 {
	for i := 0; i < 4; i++ {
		h = fnvByte(h, byte(n>>(8*i)))
	}
	return h
}
