package values

// The types a variable may be declared with. There is no declared type corresponding to ABSENT.
type DeclaredType uint8

const (
	INT_TYPE DeclaredType = iota + 1
	FLOAT_TYPE
	STRING_TYPE
	BOOL_TYPE
)

var declaredTypeNames = map[string]DeclaredType{
	"int":     INT_TYPE,
	"float":   FLOAT_TYPE,
	"string":  STRING_TYPE,
	"bool":    BOOL_TYPE,
	"boolean": BOOL_TYPE,
}

func LookupDeclaredType(name string) (DeclaredType, bool) {
	dt, ok := declaredTypeNames[name]
	return dt, ok
}

func (dt DeclaredType) String() string {
	switch dt {
	case INT_TYPE:
		return "int"
	case FLOAT_TYPE:
		return "float"
	case STRING_TYPE:
		return "string"
	case BOOL_TYPE:
		return "bool"
	}
	return "unknown"
}

// ValueType gives the variant a value must have to be stored under this declared type.
func (dt DeclaredType) ValueType() ValueType {
	switch dt {
	case INT_TYPE:
		return INT
	case FLOAT_TYPE:
		return FLOAT
	case STRING_TYPE:
		return STRING
	case BOOL_TYPE:
		return BOOL
	}
	return ABSENT
}
