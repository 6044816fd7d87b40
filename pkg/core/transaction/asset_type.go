package transaction

// AssetType is a type of asset registered by RegisterTX.
type AssetType uint8

// Valid asset types.
const (
	CreditFlag AssetType = 0x40
	DutyFlag   AssetType = 0x80

	GoverningToken AssetType = 0x00
	UtilityToken   AssetType = 0x01
	Currency       AssetType = 0x08
	Share          AssetType = DutyFlag | 0x10
	Invoice        AssetType = DutyFlag | 0x18
	Token          AssetType = CreditFlag | 0x20
)

// ParamType is a type of a smart contract parameter declared by PublishTX.
type ParamType byte

// Parameter types used by published contracts.
const (
	SignatureType        ParamType = 0x00
	BoolType             ParamType = 0x01
	IntegerType          ParamType = 0x02
	Hash160Type          ParamType = 0x03
	Hash256Type          ParamType = 0x04
	ByteArrayType        ParamType = 0x05
	PublicKeyType        ParamType = 0x06
	StringType           ParamType = 0x07
	ArrayType            ParamType = 0x10
	InteropInterfaceType ParamType = 0xf0
	VoidType             ParamType = 0xff
)
