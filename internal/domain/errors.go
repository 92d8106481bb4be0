package domain

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidFilmID      = errors.New("invalid film id")
	ErrSeatNotFound       = errors.New("seat not found")
	ErrEmptySelection     = errors.New("please select at least one seat")
	ErrShowtimeRequired   = errors.New("date and time must be selected")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrCartEmpty          = errors.New("your cart is empty, please add tickets first")
	ErrDuplicateBooking   = errors.New("duplicate seat booking")
	ErrCheckoutInProgress = errors.New("a checkout is already in progress")
)
