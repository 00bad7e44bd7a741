package types

import "cosmossdk.io/errors"

var (
	// ERROR 1 IS RESERVED BY COSMOS-SDK PACKAGE
	ErrUnauthorized             = errors.Register(ModuleName, 2, "unauthorized message signer")
	ErrInconsistentDistribution = errors.Register(ModuleName, 3, "distribution fractions do not sum to one whole")
	ErrInvalidParams            = errors.Register(ModuleName, 4, "invalid params")
	ErrInvalidAmount            = errors.Register(ModuleName, 5, "invalid amount")
	ErrInvalidAddress           = errors.Register(ModuleName, 6, "invalid address")
	ErrNotFound                 = errors.Register(ModuleName, 7, "not found")
)
