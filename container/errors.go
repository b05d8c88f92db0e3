package container

import (
	"errors"
	"fmt"
)

// ErrEmptyContainer is returned when an element is requested from an empty container.
var ErrEmptyContainer = errors.New("container: container is empty")

// emptyError attaches the failing method to ErrEmptyContainer.
func emptyError(method string) error {
	return fmt.Errorf("%w: %s", ErrEmptyContainer, method)
}
