package aa

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// BarzCreateAccountSignature is the Barz factory method deploying accounts.
const BarzCreateAccountSignature = "createAccount(address,bytes,uint256)"

var (
	barzCreateAccount     = MethodID(BarzCreateAccountSignature)
	barzCreateAccountArgs = abi.Arguments{{Type: addressType}, {Type: bytesType}, {Type: uint256Type}}
	barzConstructorArgs   = abi.Arguments{
		{Type: addressType}, {Type: addressType}, {Type: addressType},
		{Type: addressType}, {Type: addressType}, {Type: bytesType},
	}
)

// BarzInput is everything a Barz account address depends on.
type BarzInput struct {
	Factory           common.Address
	AccountFacet      common.Address
	VerificationFacet common.Address
	EntryPoint        common.Address
	FacetRegistry     common.Address
	DefaultFallback   common.Address
	// Bytecode is the creation code of the account contract.
	Bytecode []byte
	// Owner is the uncompressed owner public key.
	Owner []byte
	Salt  uint32
}

// BarzInitCode returns the user operation init code deploying a Barz
// account: the factory address followed by the createAccount call.
func BarzInitCode(factory common.Address, owner []byte, verificationFacet common.Address, salt uint32) ([]byte, error) {
	args, err := barzCreateAccountArgs.Pack(verificationFacet, owner, uint256.NewInt(uint64(salt)).ToBig())
	if err != nil {
		return nil, fmt.Errorf("failed to pack arguments: %w", err)
	}
	res := make([]byte, 0, common.AddressLength+len(barzCreateAccount)+len(args))
	res = append(res, factory.Bytes()...)
	res = append(res, barzCreateAccount[:]...)
	return append(res, args...), nil
}

// BarzAddress returns the CREATE2 address of a Barz account. The init code
// is the account bytecode with ABI-encoded constructor arguments appended.
func BarzAddress(in BarzInput, h Hasher) (common.Address, error) {
	args, err := barzConstructorArgs.Pack(in.AccountFacet, in.VerificationFacet, in.EntryPoint,
		in.FacetRegistry, in.DefaultFallback, in.Owner)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to pack arguments: %w", err)
	}
	code := make([]byte, 0, len(in.Bytecode)+len(args))
	code = append(code, in.Bytecode...)
	code = append(code, args...)

	codeHash, err := h.word(code)
	if err != nil {
		return common.Address{}, fmt.Errorf("init code hash: %w", err)
	}
	salt := uint256.NewInt(uint64(in.Salt)).Bytes32()
	b, err := Create2.address(in.Factory, salt[:], codeHash, h)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(b), nil
}
