package kernel

import (
	"errors"
	"fmt"

	"pancakelab/internal/pkg/errs"
	"pancakelab/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// Address is the delivery destination of an order: a building and a room inside it.
// Both numbers are positive. Address is an immutable value object; the zero value
// is invalid.
//
// Example:
//
//	addr, err := kernel.NewAddress(1, 101)
//	if err != nil {
//	    // building or room was not positive
//	}
//	fmt.Println(addr) // Address(building 1, room 101)
type Address struct { //nolint:recvcheck //using for validation
	building int
	room     int
	guard    guard.ConstructorGuard
}

// NewAddress validates both numbers and reports every violation at once.
func NewAddress(building int, room int) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setBuilding(building), addr.setRoom(room)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate returns ErrAddressIsNotConstructed for a zero-value Address.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Building returns the building number.
func (a Address) Building() int {
	return a.building
}

// Room returns the room number.
func (a Address) Room() int {
	return a.room
}

func (a Address) String() string {
	return fmt.Sprintf("Address(building %d, room %d)", a.building, a.room)
}

// IsEqual compares two constructed addresses by value.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

func (a *Address) setBuilding(building int) error {
	if building <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("building", fmt.Errorf("%d is not greater than 0", building))
	}

	a.building = building
	return nil
}

func (a *Address) setRoom(room int) error {
	if room <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("room", fmt.Errorf("%d is not greater than 0", room))
	}

	a.room = room
	return nil
}
