package table

import (
	proto "github.com/gogo/protobuf/proto"
)

////////////// SECTION Records ///////////////

type SoPost struct {
	PostId    []byte `protobuf:"bytes,1,opt,name=post_id,json=postId,proto3" json:"post_id,omitempty"`
	Author    []byte `protobuf:"bytes,2,opt,name=author,proto3" json:"author,omitempty"`
	Title     string `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Content   string `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	UpVotes   uint64 `protobuf:"varint,5,opt,name=up_votes,json=upVotes,proto3" json:"up_votes,omitempty"`
	DownVotes uint64 `protobuf:"varint,6,opt,name=down_votes,json=downVotes,proto3" json:"down_votes,omitempty"`
	Rewarded  bool   `protobuf:"varint,7,opt,name=rewarded,proto3" json:"rewarded,omitempty"`
	Created   int64  `protobuf:"varint,8,opt,name=created,proto3" json:"created,omitempty"`
}

func (m *SoPost) Reset()         { *m = SoPost{} }
func (m *SoPost) String() string { return proto.CompactTextString(m) }
func (*SoPost) ProtoMessage()    {}

type SoVote struct {
	VoteId    []byte `protobuf:"bytes,1,opt,name=vote_id,json=voteId,proto3" json:"vote_id,omitempty"`
	Voter     []byte `protobuf:"bytes,2,opt,name=voter,proto3" json:"voter,omitempty"`
	PostId    []byte `protobuf:"bytes,3,opt,name=post_id,json=postId,proto3" json:"post_id,omitempty"`
	Direction int32  `protobuf:"varint,4,opt,name=direction,proto3" json:"direction,omitempty"`
	Created   int64  `protobuf:"varint,5,opt,name=created,proto3" json:"created,omitempty"`
}

func (m *SoVote) Reset()         { *m = SoVote{} }
func (m *SoVote) String() string { return proto.CompactTextString(m) }
func (*SoVote) ProtoMessage()    {}

type SoCreatorWallet struct {
	WalletId       []byte `protobuf:"bytes,1,opt,name=wallet_id,json=walletId,proto3" json:"wallet_id,omitempty"`
	Owner          []byte `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	VaultAuthority []byte `protobuf:"bytes,3,opt,name=vault_authority,json=vaultAuthority,proto3" json:"vault_authority,omitempty"`
	Vault          []byte `protobuf:"bytes,4,opt,name=vault,proto3" json:"vault,omitempty"`
	Created        int64  `protobuf:"varint,5,opt,name=created,proto3" json:"created,omitempty"`
}

func (m *SoCreatorWallet) Reset()         { *m = SoCreatorWallet{} }
func (m *SoCreatorWallet) String() string { return proto.CompactTextString(m) }
func (*SoCreatorWallet) ProtoMessage()    {}

type SoTokenAccount struct {
	Account []byte `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	Owner   []byte `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Balance uint64 `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *SoTokenAccount) Reset()         { *m = SoTokenAccount{} }
func (m *SoTokenAccount) String() string { return proto.CompactTextString(m) }
func (*SoTokenAccount) ProtoMessage()    {}
