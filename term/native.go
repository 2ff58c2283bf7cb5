package term

import "strconv"

// Native converts the literal to its Go-native value based on its datatype.
// Integer, decimal, double, and boolean literals yield int64, float64, and
// bool respectively; anything else, including lang-tagged literals, yields
// the lexical form as a string. A lexical form that does not parse under its
// declared datatype also falls back to the string form.
func (l Literal) Native() any {
	switch l.Datatype {
	case XSDInteger:
		if i, err := strconv.ParseInt(l.Lexical, 10, 64); err == nil {
			return i
		}

	case XSDDecimal, XSDDouble:
		if f, err := strconv.ParseFloat(l.Lexical, 64); err == nil {
			return f
		}

	case XSDBoolean:
		if b, err := strconv.ParseBool(l.Lexical); err == nil {
			return b
		}
	}

	return l.Lexical
}

// Native converts any term to a Go-native value suitable for expression
// environments and serialized output. Literals convert per their datatype;
// other terms render in surface syntax.
func Native(t Term) any {
	switch x := t.(type) {
	case Literal:
		return x.Native()

	case nil:
		return nil

	default:
		return x.String()
	}
}
