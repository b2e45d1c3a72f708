package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Element lookup errors
const (
	// ErrCodeEmptySequence indicates a terminal operation found no (matching) element.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeElementNotFound indicates a positional or last-match lookup found nothing.
	ErrCodeElementNotFound ErrorCode = "ELEMENT_NOT_FOUND"
	// ErrCodeNotASingleSequence indicates more than one element matched.
	ErrCodeNotASingleSequence ErrorCode = "NOT_A_SINGLE_SEQUENCE"
)

// Argument errors
const (
	// ErrCodeNegativeDropSize indicates Drop was called with a negative count.
	ErrCodeNegativeDropSize ErrorCode = "NEGATIVE_DROP_SIZE"
	// ErrCodeOutOfBounds indicates a count or size argument outside its valid range.
	ErrCodeOutOfBounds ErrorCode = "OUT_OF_BOUNDS"
)

// Element type errors
const (
	// ErrCodeNonNumericSequence indicates a numeric fold met a non-numeric element.
	ErrCodeNonNumericSequence ErrorCode = "NON_NUMERIC_SEQUENCE"
	// ErrCodeTypeNotIterable indicates a flat-map transform returned something that cannot be iterated.
	ErrCodeTypeNotIterable ErrorCode = "TYPE_NOT_ITERABLE"
	// ErrCodeItemNotIterable indicates a flattened element cannot be iterated.
	ErrCodeItemNotIterable ErrorCode = "ITEM_NOT_ITERABLE"
)

// Setup errors
const (
	// ErrCodeInvalidConfig indicates settings failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInternal indicates an unexpected failure, usually from a producer.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var argumentCodes = map[ErrorCode]bool{
	ErrCodeNegativeDropSize: true,
	ErrCodeOutOfBounds:      true,
	ErrCodeInvalidConfig:    true,
}

// IsArgumentCode returns true if the code reports a bad call argument rather
// than a property of the elements.
func IsArgumentCode(code ErrorCode) bool {
	return argumentCodes[code]
}
