package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that an operation combined resources that cannot be combined.
var ErrConflict = errors.New("conflicting resources")

// Currency error kinds. Each kind also matches one of the coarse categories above,
// so callers can tell programmer errors (ErrValidation) from data errors.
var (
	ErrArgumentNull       = errors.New("argument is null")
	ErrArgumentEmpty      = errors.New("argument is empty")
	ErrArgumentOutOfRange = errors.New("argument out of range")
	ErrUnknownCurrency    = errors.New("unknown currency")
	ErrUnknownNamespace   = errors.New("unknown namespace")
	ErrAlreadyRegistered  = errors.New("currency already registered")
	ErrCurrencyNotFound   = errors.New("currency not found")
	ErrCurrencyMismatch   = errors.New("currency mismatch")
)

func categoryOf(kind error) error {
	switch kind {
	case ErrArgumentNull, ErrArgumentEmpty, ErrArgumentOutOfRange:
		return ErrValidation
	case ErrUnknownCurrency, ErrUnknownNamespace, ErrCurrencyNotFound:
		return ErrNotFound
	case ErrAlreadyRegistered:
		return ErrDuplicate
	case ErrCurrencyMismatch:
		return ErrConflict
	}
	return nil
}

// CurrencyError is returned by the registry, the builder and money arithmetic.
// It carries the offending code/namespace pair (or field name) so messages can be
// traced back to the input that caused them.
type CurrencyError struct {
	Kind      error
	Field     string
	Code      string
	Namespace string
	// Other is the second currency of a mismatch, formatted as code or namespace::code.
	Other  string
	Detail string
}

func (e *CurrencyError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	switch {
	case e.Kind == ErrCurrencyMismatch:
		fmt.Fprintf(&b, ": %s and %s", qualified(e.Code, e.Namespace), e.Other)
	case e.Field != "":
		fmt.Fprintf(&b, ": %s", e.Field)
	case e.Code != "" && e.Namespace != "":
		fmt.Fprintf(&b, ": %s in namespace %s", e.Code, e.Namespace)
	case e.Code != "":
		fmt.Fprintf(&b, ": %s", e.Code)
	case e.Namespace != "":
		fmt.Fprintf(&b, ": %s", e.Namespace)
	}
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap exposes both the specific kind and its category to errors.Is.
func (e *CurrencyError) Unwrap() []error {
	if cat := categoryOf(e.Kind); cat != nil {
		return []error{e.Kind, cat}
	}
	return []error{e.Kind}
}

func qualified(code, namespace string) string {
	if namespace == "" {
		return code
	}
	return namespace + "::" + code
}

// ArgumentNull reports a required input that was not supplied.
func ArgumentNull(field string) error {
	return &CurrencyError{Kind: ErrArgumentNull, Field: field}
}

// ArgumentEmpty reports a required string input that was empty.
func ArgumentEmpty(field string) error {
	return &CurrencyError{Kind: ErrArgumentEmpty, Field: field}
}

// ArgumentOutOfRange reports an input outside its allowed range.
func ArgumentOutOfRange(field, detail string) error {
	return &CurrencyError{Kind: ErrArgumentOutOfRange, Field: field, Detail: detail}
}

// UnknownCurrency reports a code missing from every namespace, or from the given one.
func UnknownCurrency(code, namespace string) error {
	return &CurrencyError{Kind: ErrUnknownCurrency, Code: code, Namespace: namespace}
}

// UnknownNamespace reports a namespace that was never registered.
func UnknownNamespace(namespace string) error {
	return &CurrencyError{Kind: ErrUnknownNamespace, Namespace: namespace}
}

// AlreadyRegistered reports a (code, namespace) key that is already in use.
func AlreadyRegistered(code, namespace string) error {
	return &CurrencyError{Kind: ErrAlreadyRegistered, Code: code, Namespace: namespace}
}

// CurrencyNotFound reports an attempt to unregister a key that does not exist.
func CurrencyNotFound(code, namespace string) error {
	return &CurrencyError{Kind: ErrCurrencyNotFound, Code: code, Namespace: namespace}
}

// CurrencyMismatch reports arithmetic or comparison between two different currencies.
func CurrencyMismatch(codeA, namespaceA, codeB, namespaceB string) error {
	return &CurrencyError{
		Kind:      ErrCurrencyMismatch,
		Code:      codeA,
		Namespace: namespaceA,
		Other:     qualified(codeB, namespaceB),
	}
}
