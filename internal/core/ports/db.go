package ports

import (
	"github.com/lovelace-labs/ballast/internal/core/domain"
)

// RepoManager gives access to the repositories of the domain and abstracts
// over the concrete storage backing each of them.
type RepoManager interface {
	WalletRepository() domain.WalletRepository
	TransferRepository() domain.TransferRepository

	Close()
}
