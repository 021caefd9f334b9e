package application

// Names of the two wallets the rebalancing flow keeps even.
const (
	PortWalletName      = "port"
	StarboardWalletName = "starboard"
)

// Defaults for the tunable amounts, all expressed in lovelace except the
// TTL window which is a number of slots.
const (
	DefaultFeeReserve      uint64 = 200000
	DefaultTTLWindow       uint64 = 10000
	DefaultRebalanceAmount uint64 = 1000000
)
