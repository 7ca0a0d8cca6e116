package keyword

// ValueType is the type constraint applied to one argument position.
type ValueType string

// The closed set of argument value types.
const (
	TypeNone         ValueType = "none"
	TypeInteger      ValueType = "integer"
	TypeASCII        ValueType = "ascii"
	TypeQuotedString ValueType = "string"
	TypeEnum         ValueType = "enum"
	TypeIPv4Address  ValueType = "ipv4"
	TypeIPv4Network  ValueType = "network"
	TypeRoute        ValueType = "route"
)

// valueTypes is the set of valid value types.
var valueTypes = map[ValueType]struct{}{
	TypeNone:         {},
	TypeInteger:      {},
	TypeASCII:        {},
	TypeQuotedString: {},
	TypeEnum:         {},
	TypeIPv4Address:  {},
	TypeIPv4Network:  {},
	TypeRoute:        {},
}

// IsValid reports whether t is a known value type.
func (t ValueType) IsValid() bool {
	_, ok := valueTypes[t]
	return ok
}

// String returns the type name.
func (t ValueType) String() string {
	return string(t)
}

// TokenWidth returns how many line tokens one argument of this type
// consumes. All types consume a single token except network, which
// jointly consumes an address token and the following netmask token.
func (t ValueType) TokenWidth() int {
	if t == TypeIPv4Network {
		return 2
	}
	return 1
}

// SupportedValueTypes returns all valid value types, for error messages.
func SupportedValueTypes() []ValueType {
	return []ValueType{
		TypeNone, TypeInteger, TypeASCII, TypeQuotedString,
		TypeEnum, TypeIPv4Address, TypeIPv4Network, TypeRoute,
	}
}
