package aa

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Account is an account that may not be deployed yet.
type Account struct {
	// Factory is the contract deploying account instances.
	Factory common.Address
	// Owner is the owner credential, a public key usually.
	Owner []byte
	// Implementation is the logic contract the account delegates to.
	Implementation common.Address
}

// Scheme describes how init code and addresses are derived.
type Scheme struct {
	// Selector identifies the account creating method of the factory.
	Selector [4]byte
	// ControlByte prefixes the address preimage.
	ControlByte byte
	// AddressSize is the number of trailing digest bytes forming the address.
	AddressSize int
	// InitCodeHash replaces the hash of the init code in the preimage if set.
	InitCodeHash func(initCode []byte, h Hasher) ([]byte, error)
}

// CreateAccountSignature is the factory method called by Create2 init code.
const CreateAccountSignature = "createAccount(bytes,address)"

// Create2 is the EVM CREATE2 scheme.
var Create2 = Scheme{
	Selector:    MethodID(CreateAccountSignature),
	ControlByte: 0xff,
	AddressSize: common.AddressLength,
}

var (
	bytesType   = mustType("bytes")
	addressType = mustType("address")
	uint256Type = mustType("uint256")

	createAccountArgs = abi.Arguments{{Type: bytesType}, {Type: addressType}}
)

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

// MethodID returns the 4-byte method selector for the given signature.
func MethodID(signature string) [4]byte {
	var s [4]byte
	copy(s[:], Keccak256([]byte(signature)))
	return s
}

// InitCode returns the factory call deploying acc: the selector followed by
// ABI-encoded owner and implementation.
func (s Scheme) InitCode(acc Account) ([]byte, error) {
	args, err := createAccountArgs.Pack(acc.Owner, acc.Implementation)
	if err != nil {
		return nil, fmt.Errorf("failed to pack arguments: %w", err)
	}
	return append(s.Selector[:], args...), nil
}

// Address returns the address acc will be deployed at:
// h(control ++ factory ++ h(owner) ++ h(initCode)) truncated to AddressSize
// trailing bytes.
func (s Scheme) Address(acc Account, h Hasher) ([]byte, error) {
	initCode, err := s.InitCode(acc)
	if err != nil {
		return nil, err
	}
	salt, err := h.word(acc.Owner)
	if err != nil {
		return nil, fmt.Errorf("salt: %w", err)
	}
	var codeHash []byte
	if s.InitCodeHash != nil {
		codeHash, err = s.InitCodeHash(initCode, h)
	} else {
		codeHash, err = h.word(initCode)
	}
	if err != nil {
		return nil, fmt.Errorf("init code hash: %w", err)
	}
	return s.address(acc.Factory, salt, codeHash, h)
}

func (s Scheme) address(factory common.Address, salt, codeHash []byte, h Hasher) ([]byte, error) {
	pre := make([]byte, 0, 1+len(factory)+len(salt)+len(codeHash))
	pre = append(pre, s.ControlByte)
	pre = append(pre, factory[:]...)
	pre = append(pre, salt...)
	pre = append(pre, codeHash...)

	d := h(pre)
	if s.AddressSize <= 0 || len(d) < s.AddressSize {
		return nil, fmt.Errorf("%w: %d bytes for %d byte address", ErrDigestSize, len(d), s.AddressSize)
	}
	return append([]byte(nil), d[len(d)-s.AddressSize:]...), nil
}

// BuildInitCode returns the Create2 init code for the account.
func BuildInitCode(factory common.Address, owner []byte, implementation common.Address) ([]byte, error) {
	return Create2.InitCode(Account{Factory: factory, Owner: owner, Implementation: implementation})
}

// ComputeCounterfactualAddress returns the Create2 address of the account
// using h for every digest.
func ComputeCounterfactualAddress(factory common.Address, owner []byte, implementation common.Address, h Hasher) (common.Address, error) {
	b, err := Create2.Address(Account{Factory: factory, Owner: owner, Implementation: implementation}, h)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(b), nil
}

// UserOpInitCode returns the initCode field of an ERC-4337 user operation:
// the factory address followed by the factory call.
func UserOpInitCode(acc Account) ([]byte, error) {
	call, err := Create2.InitCode(acc)
	if err != nil {
		return nil, err
	}
	return append(acc.Factory.Bytes(), call...), nil
}
