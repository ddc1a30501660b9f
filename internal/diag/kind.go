package diag

// Kind enumerates every diagnostic this pass can emit. The catalogue
// mirrors the specification's external-interface table, plus two
// supplements: ReturnOutsideFunction, for a return statement with no
// enclosing function, and InheritanceCycle, called out in the Open
// Questions.
type Kind int

const (
	DeclConflict Kind = iota
	OverrideMismatch
	InterfaceNotImplemented
	IdentifierNotDeclared
	FieldNotFoundInBase
	InaccessibleField
	IncompatibleOperand
	IncompatibleOperands
	TestNotBoolean
	BracketsOnNonArray
	SubscriptNotInteger
	NewArraySizeNotInteger
	ArgMismatch
	NumArgsMismatch
	PrintArgMismatch
	ReturnMismatch
	ThisOutsideClassScope
	BreakOutsideLoop
	ReturnOutsideFunction
	InheritanceCycle
)

func (k Kind) String() string {
	switch k {
	case DeclConflict:
		return "DeclConflict"
	case OverrideMismatch:
		return "OverrideMismatch"
	case InterfaceNotImplemented:
		return "InterfaceNotImplemented"
	case IdentifierNotDeclared:
		return "IdentifierNotDeclared"
	case FieldNotFoundInBase:
		return "FieldNotFoundInBase"
	case InaccessibleField:
		return "InaccessibleField"
	case IncompatibleOperand:
		return "IncompatibleOperand"
	case IncompatibleOperands:
		return "IncompatibleOperands"
	case TestNotBoolean:
		return "TestNotBoolean"
	case BracketsOnNonArray:
		return "BracketsOnNonArray"
	case SubscriptNotInteger:
		return "SubscriptNotInteger"
	case NewArraySizeNotInteger:
		return "NewArraySizeNotInteger"
	case ArgMismatch:
		return "ArgMismatch"
	case NumArgsMismatch:
		return "NumArgsMismatch"
	case PrintArgMismatch:
		return "PrintArgMismatch"
	case ReturnMismatch:
		return "ReturnMismatch"
	case ThisOutsideClassScope:
		return "ThisOutsideClassScope"
	case BreakOutsideLoop:
		return "BreakOutsideLoop"
	case ReturnOutsideFunction:
		return "ReturnOutsideFunction"
	case InheritanceCycle:
		return "InheritanceCycle"
	default:
		return "Unknown"
	}
}

// Reason qualifies an IdentifierNotDeclared diagnostic.
type Reason int

const (
	LookingForVariable Reason = iota
	LookingForFunction
	LookingForClass
	LookingForInterface
	LookingForType
)

func (r Reason) String() string {
	switch r {
	case LookingForVariable:
		return "variable"
	case LookingForFunction:
		return "function"
	case LookingForClass:
		return "class"
	case LookingForInterface:
		return "interface"
	case LookingForType:
		return "type"
	default:
		return "identifier"
	}
}
