package prototype

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressText(t *testing.T) {
	a := assert.New(t)

	alice := NamedAddress("alice")
	parsed, err := ParseAddress(alice.String())
	a.NoError(err)
	a.Equal(alice, parsed)

	// leading zero bytes survive the text form
	small := BytesToAddress([]byte{1, 2, 3})
	parsed, err = ParseAddress(small.String())
	a.NoError(err)
	a.Equal(small, parsed)

	for _, bad := range []string{"", "0OIl", "not base58!"} {
		_, err = ParseAddress(bad)
		a.ErrorIs(err, ErrAddressFormat, bad)
	}

	buf, err := json.Marshal(struct{ A Address }{alice})
	a.NoError(err)
	var out struct{ A Address }
	a.NoError(json.Unmarshal(buf, &out))
	a.Equal(alice, out.A)
}

func TestDerivedAddresses(t *testing.T) {
	a := assert.New(t)
	alice, bob := NamedAddress("alice"), NamedAddress("bob")

	a.Equal(PostAddress(alice, "t"), PostAddress(alice, "t"))
	a.NotEqual(PostAddress(alice, "t"), PostAddress(bob, "t"))
	a.NotEqual(PostAddress(alice, "t"), PostAddress(alice, "T"))
	// the title is hashed on its own, moving bytes between fields changes the address
	a.NotEqual(PostAddress(alice, "ab"), PostAddress(alice, "a"))

	post := PostAddress(alice, "t")
	a.NotEqual(VoteAddress(alice, post), VoteAddress(bob, post))
	a.Equal(VoteAddress(bob, post), VoteAddress(bob, post))

	// one seed per record kind
	wallet := CreatorWalletAddress(alice)
	a.NotEqual(wallet, TokenAccountAddress(alice))
	a.NotEqual(VaultAuthorityAddress(wallet), wallet)
	a.False(wallet.IsZero())
	a.True(ZeroAddress.IsZero())
}

func TestPostLimits(t *testing.T) {
	a := assert.New(t)
	a.ErrorIs(ValidPostTitle(""), ErrTitleRequired)
	a.NoError(ValidPostTitle("界"))
	a.ErrorIs(ValidPostContent(""), ErrContentRequired)

	op := &CreatePostOperation{Title: "t", Content: "c"}
	a.ErrorIs(op.Validate(), ErrInvalidOperation)
	op.Author = NamedAddress("alice")
	a.NoError(op.Validate())
}

func TestVoteDirection(t *testing.T) {
	a := assert.New(t)
	d, err := ParseVoteDirection("Down")
	a.NoError(err)
	a.Equal(VoteDown, d)
	_, err = ParseVoteDirection("left")
	a.ErrorIs(err, ErrInvalidOperation)

	buf, err := json.Marshal(VoteUp)
	a.NoError(err)
	a.Equal(`"up"`, string(buf))
	a.Error(json.Unmarshal([]byte(`"sideways"`), &d))
	a.False(VoteDirection(0).Valid())
}
