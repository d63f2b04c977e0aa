package vault

import (
	"errors"
)

var (
	ErrDuplicateName     = errors.New("domain name already exists")
	ErrNoDomainSelected  = errors.New("no domain selected")
	ErrNoAccountSelected = errors.New("no account selected")
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("invalid data")
	ErrParse             = errors.New("malformed json")
)
