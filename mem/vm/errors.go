package vm

import "errors"

// ErrInvalidConfig is returned when the address space or TLB parameters do
// not describe a valid translation unit.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrAddressOutOfRange is returned when a virtual address maps to a page
// number that the page table does not cover.
var ErrAddressOutOfRange = errors.New("address out of range")
