// Package types implements the builtin type registry: the closed set of
// process-wide singleton types every Expr node's type attribute can point
// at before any type inference has run.
package types

// Type is the root of the builtin type hierarchy. Every concrete type
// embeds base, which supplies Name and identity-based IsAssignable; the
// concrete types override at most Size.
type Type interface {
	Name() string
	Size() int
	IsAssignable(from Type) bool
}

// base gives every builtin type address-equality IsAssignable and a
// sizeless default, mirroring Type::isAssignable's `this == from.get()`.
// self is set once, right after each singleton is constructed, to the
// singleton's own Type value — comparing through self rather than through
// b itself, since b's static type is always *base regardless of which
// concrete singleton embeds it, and an interface comparison is only equal
// when both the dynamic type and value match.
type base struct {
	name string
	self Type
}

func (b *base) Name() string { return b.name }
func (b *base) Size() int    { return 0 }

// IsAssignable is identity-equality on singletons: a type is assignable
// from itself and nothing else until real type checking exists.
func (b *base) IsAssignable(from Type) bool { return b.self == from }

// BuiltinType is the plain named singleton (auto, null).
type BuiltinType struct{ base }

func newBuiltin(name string) *BuiltinType { return &BuiltinType{base{name: name}} }

// BoolType, CharType and StringType each specialize only Size; VoidType
// keeps base's zero size.

type BoolType struct{ base }

func (*BoolType) Size() int { return 1 }

type CharType struct{ base }

// Size is 4: char is a 32-bit scalar, not a single byte.
func (*CharType) Size() int { return 4 }

type VoidType struct{ base }

type StringType struct{ base }

// Size is a pointer width on the target; the C emitter never needs to lay
// out a string's bytes itself, so 8 (a 64-bit pointer) is a fine nominal
// value rather than a target-dependent one.
func (*StringType) Size() int { return 8 }

// IntegerType carries bit width and signedness alongside its name.
type IntegerType struct {
	base
	Bits     uint8
	IsSigned bool
}

func (t *IntegerType) Size() int { return int(t.Bits) / 8 }

// Bigger picks the wider of two integer types; on a tie it prefers the
// unsigned one. This doubles as the least-upper-bound rule type checking
// will eventually use for implicit integer promotion.
func Bigger(a, b *IntegerType) *IntegerType {
	if a.Bits != b.Bits {
		if a.Bits > b.Bits {
			return a
		}
		return b
	}
	if !a.IsSigned {
		return a
	}
	return b
}

// FloatType carries bit width alongside its name.
type FloatType struct {
	base
	Bits uint8
}

func (t *FloatType) Size() int { return int(t.Bits) / 8 }

var (
	sVoid   = &VoidType{base{name: "void"}}
	sAuto   = newBuiltin("auto")
	sNull   = newBuiltin("null")
	sBool   = &BoolType{base{name: "bool"}}
	sChar   = &CharType{base{name: "char"}}
	sString = &StringType{base{name: "string"}}

	sI8  = &IntegerType{base{name: "i8"}, 8, true}
	sU8  = &IntegerType{base{name: "u8"}, 8, false}
	sI16 = &IntegerType{base{name: "i16"}, 16, true}
	sU16 = &IntegerType{base{name: "u16"}, 16, false}
	sI32 = &IntegerType{base{name: "i32"}, 32, true}
	sU32 = &IntegerType{base{name: "u32"}, 32, false}
	sI64 = &IntegerType{base{name: "i64"}, 64, true}
	sU64 = &IntegerType{base{name: "u64"}, 64, false}

	sF32 = &FloatType{base{name: "f32"}, 32}
	sF64 = &FloatType{base{name: "f64"}, 64}
)

func init() {
	for _, t := range []Type{
		sVoid, sAuto, sNull, sBool, sChar, sString,
		sI8, sU8, sI16, sU16, sI32, sU32, sI64, sU64,
		sF32, sF64,
	} {
		selfOf(t).self = t
	}
}

// selfOf returns the *base embedded in any builtin singleton, so init can
// set self without a type switch per concrete type.
func selfOf(t Type) *base {
	switch v := t.(type) {
	case *VoidType:
		return &v.base
	case *BuiltinType:
		return &v.base
	case *BoolType:
		return &v.base
	case *CharType:
		return &v.base
	case *StringType:
		return &v.base
	case *IntegerType:
		return &v.base
	case *FloatType:
		return &v.base
	default:
		panic("types: selfOf: unknown builtin type")
	}
}

func Void() *VoidType     { return sVoid }
func Auto() *BuiltinType  { return sAuto }
func Null() *BuiltinType  { return sNull }
func Bool() *BoolType     { return sBool }
func Char() *CharType     { return sChar }
func String() *StringType { return sString }

func I8() *IntegerType  { return sI8 }
func U8() *IntegerType  { return sU8 }
func I16() *IntegerType { return sI16 }
func U16() *IntegerType { return sU16 }
func I32() *IntegerType { return sI32 }
func U32() *IntegerType { return sU32 }
func I64() *IntegerType { return sI64 }
func U64() *IntegerType { return sU64 }

func F32() *FloatType { return sF32 }
func F64() *FloatType { return sF64 }

var builtins = map[string]Type{
	sVoid.name:   sVoid,
	sAuto.name:   sAuto,
	sNull.name:   sNull,
	sBool.name:   sBool,
	sChar.name:   sChar,
	sString.name: sString,
	sI8.name:     sI8,
	sU8.name:     sU8,
	sI16.name:    sI16,
	sU16.name:    sU16,
	sI32.name:    sI32,
	sU32.name:    sU32,
	sI64.name:    sI64,
	sU64.name:    sU64,
	sF32.name:    sF32,
	sF64.name:    sF64,
}

// Lookup resolves a lexeme to its builtin singleton, mirroring
// builtin::getBuiltinType.
func Lookup(name string) (Type, bool) {
	t, ok := builtins[name]
	return t, ok
}
