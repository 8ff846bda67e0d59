package pdu

import "sync"

// MemoryStore is a fixed-size in-memory DataStore holding one bank of coils
// and one of discrete inputs, both addressed from zero.
//
// A single read-write lock serialises access. Validate and GetValues remain
// two independent calls, so a writer can slip between them; callers that
// need a stable snapshot across the pair must hold their own lock.
type MemoryStore struct {
	mx        sync.RWMutex
	coils     []bool
	discretes []bool
}

// NewMemoryStore creates a store with the given number of coils and discrete
// inputs, all initially off.
func NewMemoryStore(coils, discretes int) *MemoryStore {
	return &MemoryStore{
		coils:     make([]bool, coils),
		discretes: make([]bool, discretes),
	}
}

// bank selects the slice a function reads from. Callers hold the lock.
func (s *MemoryStore) bank(function FunctionCode) []bool {
	switch function {
	case FunctionReadCoils:
		return s.coils
	case FunctionReadDiscreteInputs:
		return s.discretes
	}
	return nil
}

// Validate reports whether count values from address fit within the bank the
// function reads. Unknown functions validate false.
func (s *MemoryStore) Validate(function FunctionCode, address, count uint16) bool {
	s.mx.RLock()
	defer s.mx.RUnlock()
	bank := s.bank(function)
	return bank != nil && int(address)+int(count) <= len(bank)
}

// GetValues returns a copy of count values starting at address.
func (s *MemoryStore) GetValues(function FunctionCode, address, count uint16) []bool {
	s.mx.RLock()
	defer s.mx.RUnlock()
	bank := s.bank(function)
	return append(make([]bool, 0, count), bank[address:int(address)+int(count)]...)
}

// SetCoils writes values into the coil bank starting at address.
func (s *MemoryStore) SetCoils(address uint16, values []bool) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	if err := storeCheckAddress("Coil", int(address), len(values), len(s.coils)); err != nil {
		return err
	}
	copy(s.coils[address:], values)
	return nil
}

// SetDiscretes seeds the discrete-input bank starting at address. Discrete
// inputs are read-only on the wire; this is for the process that owns them.
func (s *MemoryStore) SetDiscretes(address uint16, values []bool) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	if err := storeCheckAddress("Discrete", int(address), len(values), len(s.discretes)); err != nil {
		return err
	}
	copy(s.discretes[address:], values)
	return nil
}
