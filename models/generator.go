package models

// ServiceIdentity names the service a password is derived for. Bumping
// Version rotates the password without changing the master phrase.
type ServiceIdentity struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
}

// GenerateRequest is the input of a deterministic password generation.
type GenerateRequest struct {
	Phrase  string
	Service ServiceIdentity
	Length  int
}

// Strength is an advisory estimate of how hard a password is to brute force.
type Strength struct {
	Score        int    `json:"score"`
	ReadableTime string `json:"readableTime"`
}
