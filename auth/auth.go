// Package auth provides the single-owner access control capability consumed
// by every mutating bridge operation.
package auth

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Authorizer is the capability the bridge checks callers against. Tests can
// substitute a fake.
type Authorizer interface {
	CurrentOwner() common.Address
	RequireCaller(principal common.Address) error
}

// Compile-time interface check.
var _ Authorizer = (*SingleOwner)(nil)

// SingleOwner authorizes exactly one privileged principal at a time.
type SingleOwner struct {
	mu    sync.Mutex
	owner common.Address
}

func NewSingleOwner(owner common.Address) (*SingleOwner, error) {
	if owner == (common.Address{}) {
		return nil, fmt.Errorf("owner must not be the zero address")
	}
	return &SingleOwner{owner: owner}, nil
}

func (s *SingleOwner) CurrentOwner() common.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner
}

func (s *SingleOwner) RequireCaller(principal common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if principal != s.owner {
		return fmt.Errorf("caller %s is not the owner", principal.Hex())
	}
	return nil
}

// TransferOwnership hands the privilege to a new principal. Only the current
// owner may call it, and the zero address is rejected to avoid orphaning the
// bridge.
func (s *SingleOwner) TransferOwnership(caller, newOwner common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if caller != s.owner {
		return fmt.Errorf("caller %s is not the owner", caller.Hex())
	}
	if newOwner == (common.Address{}) {
		return fmt.Errorf("new owner must not be the zero address")
	}
	s.owner = newOwner
	return nil
}
