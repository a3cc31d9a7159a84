package prototype

import (
	"encoding/json"
	"strings"
)

type VoteDirection int32

const (
	VoteUp   VoteDirection = 1
	VoteDown VoteDirection = 2
)

func (d VoteDirection) Valid() bool {
	return d == VoteUp || d == VoteDown
}

func (d VoteDirection) String() string {
	switch d {
	case VoteUp:
		return "up"
	case VoteDown:
		return "down"
	default:
		return "unknown"
	}
}

func ParseVoteDirection(s string) (VoteDirection, error) {
	switch strings.ToLower(s) {
	case "up", "upvote":
		return VoteUp, nil
	case "down", "downvote":
		return VoteDown, nil
	}
	return 0, ErrInvalidOperation
}

func (d VoteDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *VoteDirection) UnmarshalJSON(input []byte) error {
	var s string
	if err := json.Unmarshal(input, &s); err != nil {
		return err
	}
	parsed, err := ParseVoteDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
