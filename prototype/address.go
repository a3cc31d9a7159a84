package prototype

import (
	"bytes"
	"crypto/sha256"
	"math/big"

	"github.com/coschain/creatorfund-go/common/constants"
	"github.com/itchyny/base58-go"
)

const AddressLength = 32

// Address identifies actors, records and token accounts.
// Record addresses are derived from their seeds, so whether a record exists is
// a lookup at a known key rather than a search.
type Address [AddressLength]byte

var ZeroAddress Address

func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) Equal(other Address) bool {
	return bytes.Equal(a[:], other[:])
}

// String returns the base58 form of the address.
func (a Address) String() string {
	bi := new(big.Int).SetBytes(a[:]).String()
	encoded, _ := base58.BitcoinEncoding.Encode([]byte(bi))
	return string(encoded)
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func ParseAddress(encoded string) (Address, error) {
	if encoded == "" {
		return ZeroAddress, ErrAddressFormat
	}
	decoded, err := base58.BitcoinEncoding.Decode([]byte(encoded))
	if err != nil {
		return ZeroAddress, ErrAddressFormat
	}
	x, ok := new(big.Int).SetString(string(decoded), 10)
	if !ok {
		return ZeroAddress, ErrAddressFormat
	}
	buf := x.Bytes()
	if len(buf) > AddressLength {
		return ZeroAddress, ErrAddressFormat
	}
	return BytesToAddress(buf), nil
}

func deriveAddress(seeds ...[]byte) Address {
	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	return BytesToAddress(h.Sum(nil))
}

// PostAddress derives the identity of the post titled title by author.
// The title is hashed first so that every component fed to the outer hash has
// a fixed width.
func PostAddress(author Address, title string) Address {
	titleHash := sha256.Sum256([]byte(title))
	return deriveAddress([]byte(constants.PostSeed), titleHash[:], author[:])
}

// VoteAddress derives the identity of the single vote voter may cast on post.
func VoteAddress(voter Address, post Address) Address {
	return deriveAddress([]byte(constants.VoteSeed), voter[:], post[:])
}

// CreatorWalletAddress derives the wallet anchor of owner.
func CreatorWalletAddress(owner Address) Address {
	return deriveAddress([]byte(constants.StateSeed), owner[:])
}

// VaultAuthorityAddress derives the authority that owns a creator wallet's vault.
func VaultAuthorityAddress(wallet Address) Address {
	return deriveAddress([]byte(constants.VaultSeed), wallet[:])
}

// TokenAccountAddress derives the default token account of owner.
func TokenAccountAddress(owner Address) Address {
	return deriveAddress([]byte(constants.AccountSeed), owner[:])
}

// NamedAddress maps a human readable name to an address.
func NamedAddress(name string) Address {
	return deriveAddress([]byte(constants.NamedSeed), []byte(name))
}
