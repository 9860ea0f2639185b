package rematch

// Value is anything the host evaluator passes around. A value takes part
// in an expression through the capability interfaces it implements.
type Value any

// Boolean values can be tested in conditions.
type Boolean interface {
	AsBoolean() (bool, error)
}

// Scalar values convert to a string.
type Scalar interface {
	AsString() (string, error)
}

// Sequence values are sized and indexable.
type Sequence interface {
	Get(i int) (Value, error)
	Size() (int, error)
}

// Collection values can be listed one element at a time.
type Collection interface {
	Iterator() Iterator
}

// Iterator walks a Collection once.
type Iterator interface {
	HasNext() (bool, error)
	Next() (Value, error)
}

// Method is a callable value, the result of a builtin such as
// "abc"?matches.
type Method func(args ...Value) (Value, error)

// String is a plain string value.
type String string

func (s String) AsString() (string, error) {
	return string(s), nil
}

func checkArgCount(op string, args []Value, min, max int) error {
	if n := len(args); n < min || n > max {
		return &ArgumentCountError{Op: op, Got: n, Min: min, Max: max}
	}
	return nil
}

func stringArg(op string, args []Value, index int) (string, error) {
	switch v := args[index].(type) {
	case string:
		return v, nil
	case Scalar:
		s, err := v.AsString()
		if err != nil {
			return "", &ArgumentTypeError{Op: op, Index: index, Got: v, Expected: "string"}
		}
		return s, nil
	default:
		return "", &ArgumentTypeError{Op: op, Index: index, Got: v, Expected: "string"}
	}
}

// optionalStringArg returns "" when the argument is missing.
func optionalStringArg(op string, args []Value, index int) (string, error) {
	if index >= len(args) {
		return "", nil
	}
	return stringArg(op, args, index)
}
