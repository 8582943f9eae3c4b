package domain

import (
	"github.com/google/uuid"
)

type CompletionID struct {
	value uuid.UUID
}

func NewCompletionID() CompletionID {
	return CompletionID{value: uuid.Must(uuid.NewV7())}
}

func CompletionIDFromString(s string) (CompletionID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CompletionID{}, ErrInvalidCompletionID
	}

	return CompletionID{value: id}, nil
}

func CompletionIDFromUUID(id uuid.UUID) CompletionID {
	return CompletionID{value: id}
}

func (c CompletionID) String() string {
	return c.value.String()
}

func (c CompletionID) UUID() uuid.UUID {
	return c.value
}

func (c CompletionID) IsZero() bool {
	return c.value == uuid.Nil
}

func (c CompletionID) Equals(other CompletionID) bool {
	return c.value == other.value
}
