package model

// GenerateRequest represents a password generation request.
// Pointers distinguish a missing field (nil -> default) from an explicit value,
// so a class flag can be false and a length can be 0.
type GenerateRequest struct {
	Length      *int  `json:"length"`
	Digits      *bool `json:"digits"`
	Lowercase   *bool `json:"lowercase"`
	Uppercase   *bool `json:"uppercase"`
	Punctuation *bool `json:"punctuation"`
	Count       int   `json:"count"`
}

// GenerateResponse carries one or more generated passwords.
type GenerateResponse struct {
	Passwords    []string `json:"passwords"`
	Length       int      `json:"length"`
	AlphabetSize int      `json:"alphabet_size"`
}

// ClassResponse describes one character class.
type ClassResponse struct {
	Name    string `json:"name"`
	Charset string `json:"charset"`
}
