package booking

import "errors"

// ===============================
// Taxonomia de erros do núcleo
// ===============================

type ErrKind int

const (
	KindValidation ErrKind = iota
	KindSlotConflict
	KindInvalidTransition
	KindNotFound
)

type DomainError struct {
	Kind ErrKind
	Code string
}

func (e DomainError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return DomainError{Kind: KindValidation, Code: code}
}

func ErrSlotConflict(code string) error {
	return DomainError{Kind: KindSlotConflict, Code: code}
}

func ErrInvalidTransition(code string) error {
	return DomainError{Kind: KindInvalidTransition, Code: code}
}

func ErrNotFound(code string) error {
	return DomainError{Kind: KindNotFound, Code: code}
}

func IsKind(err error, kind ErrKind) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func IsCode(err error, code string) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
