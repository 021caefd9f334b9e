// Package network defines the chain parameters of the supported Cardano
// networks. A Network value is threaded through every component that needs
// to discriminate address encoding or pick an explorer endpoint.
package network

import "fmt"

// Network holds the parameters telling apart the supported chains.
type Network struct {
	// Name is the human readable identifier of the network.
	Name string
	// ID is the network discriminator embedded in the address header byte.
	ID byte
	// AddressHRP is the bech32 human readable prefix for payment addresses.
	AddressHRP string
	// StakeHRP is the bech32 human readable prefix for reward addresses.
	StakeHRP string
	// ExplorerURL is the default base URL of the indexing service.
	ExplorerURL string
}

// Mainnet defines the network parameters for the production chain.
var Mainnet = Network{
	Name:        "mainnet",
	ID:          1,
	AddressHRP:  "addr",
	StakeHRP:    "stake",
	ExplorerURL: "https://cardano-mainnet.blockfrost.io/api/v0",
}

// Preprod defines the network parameters for the pre-production test chain.
var Preprod = Network{
	Name:        "preprod",
	ID:          0,
	AddressHRP:  "addr_test",
	StakeHRP:    "stake_test",
	ExplorerURL: "https://cardano-preprod.blockfrost.io/api/v0",
}

// Preview defines the network parameters for the preview test chain.
var Preview = Network{
	Name:        "preview",
	ID:          0,
	AddressHRP:  "addr_test",
	StakeHRP:    "stake_test",
	ExplorerURL: "https://cardano-preview.blockfrost.io/api/v0",
}

// FromName returns the network with the given name.
func FromName(name string) (*Network, error) {
	switch name {
	case Mainnet.Name:
		return &Mainnet, nil
	case Preprod.Name:
		return &Preprod, nil
	case Preview.Name:
		return &Preview, nil
	default:
		return nil, fmt.Errorf("unknown network '%s'", name)
	}
}
