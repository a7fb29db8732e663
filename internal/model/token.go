package model

// TokenManager issues and validates signed bearer tokens carrying a subject
// claim.
type TokenManager interface {
	Issue(subject string) (string, error)
	Parse(token string) (subject string, err error)
}
