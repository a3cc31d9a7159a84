package prototype

type CreatePostOperation struct {
	Author  Address `json:"author"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
}

func (m *CreatePostOperation) GetSigner() Address {
	if m == nil {
		return ZeroAddress
	}
	return m.Author
}

func (m *CreatePostOperation) Validate() error {
	if m == nil {
		return ErrInvalidOperation
	}
	if err := requireAddress(m.Author, "author"); err != nil {
		return err
	}
	if err := ValidPostTitle(m.Title); err != nil {
		return err
	}
	return ValidPostContent(m.Content)
}
