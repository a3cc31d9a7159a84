package prototype

import (
	"unicode/utf8"

	"github.com/coschain/creatorfund-go/common/constants"
)

// ValidPostTitle checks a title against the post limits.
// Lengths are counted in characters, not bytes.
func ValidPostTitle(s string) error {
	if len(s) == 0 {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(s) > constants.PostTitleMaxLen {
		return ErrTitleTooLong
	}
	return nil
}

func ValidPostContent(s string) error {
	if len(s) == 0 {
		return ErrContentRequired
	}
	if utf8.RuneCountInString(s) > constants.PostContentMaxLen {
		return ErrContentTooLong
	}
	return nil
}
