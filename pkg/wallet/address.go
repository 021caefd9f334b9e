package wallet

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/lovelace-labs/ballast/pkg/network"
)

// AddressType enumerates the supported address kinds
type AddressType int

const (
	// BaseAddress carries both a payment and a staking credential
	BaseAddress AddressType = iota
	// EnterpriseAddress carries a payment credential only
	EnterpriseAddress
	// StakeAddress carries a staking credential only
	StakeAddress
)

const (
	baseAddressHeader       = byte(0x00)
	enterpriseAddressHeader = byte(0x60)
	stakeAddressHeader      = byte(0xe0)

	headerTypeMask    = byte(0xf0)
	headerNetworkMask = byte(0x0f)

	baseAddressSize       = 1 + 2*KeyHashSize
	credentialAddressSize = 1 + KeyHashSize
)

// AddressInfo holds the components of a decoded address
type AddressInfo struct {
	Type           AddressType
	NetworkID      byte
	PaymentKeyHash []byte
	StakeKeyHash   []byte
}

// Bytes returns the binary representation of the address, the form carried
// by transaction outputs
func (i *AddressInfo) Bytes() []byte {
	switch i.Type {
	case EnterpriseAddress:
		buf := make([]byte, 0, credentialAddressSize)
		buf = append(buf, enterpriseAddressHeader|i.NetworkID)
		return append(buf, i.PaymentKeyHash...)
	case StakeAddress:
		buf := make([]byte, 0, credentialAddressSize)
		buf = append(buf, stakeAddressHeader|i.NetworkID)
		return append(buf, i.StakeKeyHash...)
	default:
		buf := make([]byte, 0, baseAddressSize)
		buf = append(buf, baseAddressHeader|i.NetworkID)
		buf = append(buf, i.PaymentKeyHash...)
		return append(buf, i.StakeKeyHash...)
	}
}

// EncodeBaseAddress returns the bech32 encoding of the base address with the
// provided payment and staking credentials on the provided network
func EncodeBaseAddress(
	paymentKeyHash, stakeKeyHash []byte, net *network.Network,
) (string, error) {
	if net == nil {
		return "", ErrNullNetwork
	}
	if len(paymentKeyHash) != KeyHashSize || len(stakeKeyHash) != KeyHashSize {
		return "", ErrInvalidKeyHash
	}

	data := make([]byte, 0, baseAddressSize)
	data = append(data, baseAddressHeader|net.ID)
	data = append(data, paymentKeyHash...)
	data = append(data, stakeKeyHash...)

	return encodeBech32(net.AddressHRP, data)
}

// EncodeEnterpriseAddress returns the bech32 encoding of the enterprise
// address with the provided payment credential on the provided network
func EncodeEnterpriseAddress(
	paymentKeyHash []byte, net *network.Network,
) (string, error) {
	if net == nil {
		return "", ErrNullNetwork
	}
	if len(paymentKeyHash) != KeyHashSize {
		return "", ErrInvalidKeyHash
	}

	data := make([]byte, 0, credentialAddressSize)
	data = append(data, enterpriseAddressHeader|net.ID)
	data = append(data, paymentKeyHash...)

	return encodeBech32(net.AddressHRP, data)
}

// EncodeStakeAddress returns the bech32 encoding of the reward address with
// the provided staking credential on the provided network
func EncodeStakeAddress(
	stakeKeyHash []byte, net *network.Network,
) (string, error) {
	if net == nil {
		return "", ErrNullNetwork
	}
	if len(stakeKeyHash) != KeyHashSize {
		return "", ErrInvalidKeyHash
	}

	data := make([]byte, 0, credentialAddressSize)
	data = append(data, stakeAddressHeader|net.ID)
	data = append(data, stakeKeyHash...)

	return encodeBech32(net.StakeHRP, data)
}

// DecodeAddress parses a bech32 encoded address and returns its components.
// The header embedded in the payload must be consistent with the human
// readable prefix of the encoding
func DecodeAddress(addr string) (*AddressInfo, error) {
	hrp, data, err := decodeBech32(addr)
	if err != nil {
		return nil, ErrInvalidAddress
	}
	if len(data) <= 0 {
		return nil, ErrInvalidAddress
	}

	networkID := data[0] & headerNetworkMask
	expectedNetworkID, stakeHRP, ok := parseHRP(hrp)
	if !ok || networkID != expectedNetworkID {
		return nil, ErrInvalidAddress
	}

	switch data[0] & headerTypeMask {
	case baseAddressHeader:
		if stakeHRP || len(data) != baseAddressSize {
			return nil, ErrInvalidAddress
		}
		return &AddressInfo{
			Type:           BaseAddress,
			NetworkID:      networkID,
			PaymentKeyHash: data[1 : 1+KeyHashSize],
			StakeKeyHash:   data[1+KeyHashSize:],
		}, nil
	case enterpriseAddressHeader:
		if stakeHRP || len(data) != credentialAddressSize {
			return nil, ErrInvalidAddress
		}
		return &AddressInfo{
			Type:           EnterpriseAddress,
			NetworkID:      networkID,
			PaymentKeyHash: data[1:],
		}, nil
	case stakeAddressHeader:
		if !stakeHRP || len(data) != credentialAddressSize {
			return nil, ErrInvalidAddress
		}
		return &AddressInfo{
			Type:         StakeAddress,
			NetworkID:    networkID,
			StakeKeyHash: data[1:],
		}, nil
	default:
		return nil, ErrInvalidAddress
	}
}

func parseHRP(hrp string) (networkID byte, stakeHRP, ok bool) {
	switch hrp {
	case network.Mainnet.AddressHRP:
		return network.Mainnet.ID, false, true
	case network.Mainnet.StakeHRP:
		return network.Mainnet.ID, true, true
	case network.Preprod.AddressHRP:
		return network.Preprod.ID, false, true
	case network.Preprod.StakeHRP:
		return network.Preprod.ID, true, true
	default:
		return 0, false, false
	}
}

func encodeBech32(hrp string, data []byte) (string, error) {
	conv, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, conv)
}

func decodeBech32(encoded string) (string, []byte, error) {
	hrp, conv, err := bech32.DecodeNoLimit(encoded)
	if err != nil {
		return "", nil, err
	}
	data, err := bech32.ConvertBits(conv, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, data, nil
}
