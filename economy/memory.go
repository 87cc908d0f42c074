package economy

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gamebridge-labs/gamebridge/types"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotApproved         = errors.New("operator not approved by holder")
	ErrDepositRejected     = errors.New("deposit rejected by receiver")
)

// Compile-time interface check.
var _ TokenLedger = (*Ledger)(nil)

// Ledger is an in-memory multi-token ledger. Every operation runs under one
// mutex and deposit notifications are delivered inline, so an operation and
// the receiver callback it triggers commit or revert as a single step.
type Ledger struct {
	mu        sync.Mutex
	address   common.Address
	balances  map[common.Address]map[types.ResourceID]*big.Int
	operators map[common.Address]map[common.Address]bool
	receivers map[common.Address]DepositReceiver
}

func NewLedger(address common.Address) *Ledger {
	return &Ledger{
		address:   address,
		balances:  make(map[common.Address]map[types.ResourceID]*big.Int),
		operators: make(map[common.Address]map[common.Address]bool),
		receivers: make(map[common.Address]DepositReceiver),
	}
}

func (l *Ledger) Address() common.Address {
	return l.address
}

func (l *Ledger) SupportsInterface(iface types.Ack) bool {
	return iface == types.MultiTokenInterfaceID
}

// RegisterReceiver routes future transfers into addr through the receiver's
// deposit notification.
func (l *Ledger) RegisterReceiver(addr common.Address, receiver DepositReceiver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.receivers[addr] = receiver
}

// SetApprovalForAll lets operator move any of holder's tokens.
func (l *Ledger) SetApprovalForAll(holder, operator common.Address, approved bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ops, ok := l.operators[holder]
	if !ok {
		ops = make(map[common.Address]bool)
		l.operators[holder] = ops
	}
	ops[operator] = approved
}

// Mint credits newly issued tokens to an owner. Minted tokens delivered to a
// registered receiver go through the same deposit notification as transfers.
func (l *Ledger) Mint(to common.Address, resourceID types.ResourceID, rawAmount *big.Int, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if rawAmount == nil || rawAmount.Sign() < 0 {
		return fmt.Errorf("invalid mint amount")
	}
	l.credit(to, resourceID, rawAmount)
	if receiver, ok := l.receivers[to]; ok {
		ack, err := receiver.OnTokenDeposit(l.address, l.address, common.Address{}, resourceID, new(big.Int).Set(rawAmount), data)
		if err != nil || ack != types.DepositAck {
			l.debit(to, resourceID, rawAmount)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrDepositRejected, err)
			}
			return ErrDepositRejected
		}
	}
	return nil
}

func (l *Ledger) BalanceOf(owner common.Address, resourceID types.ResourceID) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if held, ok := l.balances[owner]; ok {
		if bal, ok := held[resourceID]; ok {
			return new(big.Int).Set(bal)
		}
	}
	return new(big.Int)
}

func (l *Ledger) TransferFrom(operator, from, to common.Address, resourceID types.ResourceID, rawAmount *big.Int, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.move(operator, from, to, resourceID, rawAmount); err != nil {
		return err
	}
	if receiver, ok := l.receivers[to]; ok {
		ack, err := receiver.OnTokenDeposit(l.address, operator, from, resourceID, new(big.Int).Set(rawAmount), data)
		if err != nil || ack != types.DepositAck {
			l.debit(to, resourceID, rawAmount)
			l.credit(from, resourceID, rawAmount)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrDepositRejected, err)
			}
			return ErrDepositRejected
		}
	}
	return nil
}

func (l *Ledger) TransferBatchFrom(operator, from, to common.Address, resourceIDs []types.ResourceID, rawAmounts []*big.Int, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(resourceIDs) != len(rawAmounts) {
		return fmt.Errorf("ids and amounts length mismatch")
	}
	moved := 0
	revert := func() {
		for i := 0; i < moved; i++ {
			l.debit(to, resourceIDs[i], rawAmounts[i])
			l.credit(from, resourceIDs[i], rawAmounts[i])
		}
	}
	for i := range resourceIDs {
		if err := l.move(operator, from, to, resourceIDs[i], rawAmounts[i]); err != nil {
			revert()
			return err
		}
		moved++
	}
	if receiver, ok := l.receivers[to]; ok {
		ack, err := receiver.OnTokenBatchDeposit(l.address, operator, from, resourceIDs, rawAmounts, data)
		if err != nil || ack != types.BatchDepositAck {
			revert()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrDepositRejected, err)
			}
			return ErrDepositRejected
		}
	}
	return nil
}

// move validates and applies one balance movement. Caller holds the mutex.
func (l *Ledger) move(operator, from, to common.Address, resourceID types.ResourceID, rawAmount *big.Int) error {
	if rawAmount == nil || rawAmount.Sign() < 0 {
		return fmt.Errorf("invalid transfer amount")
	}
	if operator != from && !l.operators[from][operator] {
		return ErrNotApproved
	}
	held := l.balances[from]
	if held == nil || held[resourceID] == nil || held[resourceID].Cmp(rawAmount) < 0 {
		return ErrInsufficientBalance
	}
	l.debit(from, resourceID, rawAmount)
	l.credit(to, resourceID, rawAmount)
	return nil
}

func (l *Ledger) credit(owner common.Address, resourceID types.ResourceID, amount *big.Int) {
	held, ok := l.balances[owner]
	if !ok {
		held = make(map[types.ResourceID]*big.Int)
		l.balances[owner] = held
	}
	if held[resourceID] == nil {
		held[resourceID] = new(big.Int)
	}
	held[resourceID].Add(held[resourceID], amount)
}

func (l *Ledger) debit(owner common.Address, resourceID types.ResourceID, amount *big.Int) {
	l.balances[owner][resourceID].Sub(l.balances[owner][resourceID], amount)
}
