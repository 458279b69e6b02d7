package domain

// Role identifies which account namespace an identity belongs to. The stored
// role is authoritative: request content can never upgrade it.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RolePledger   Role = "Pledger"
	RoleNonProfit Role = "NonProfit"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RolePledger || r == RoleNonProfit
}

// Credentials is the username/password pair embedded in every request.
type Credentials struct {
	Username string
	Password string
}

// Account is one authenticatable identity, resolved from whichever role table
// its username lives in. PasswordDigest is opaque to everything except the
// hasher.
type Account struct {
	ID             int64
	Username       string
	PasswordDigest string
	Role           Role
}

// AuthDecision is the truthful outcome of a successful authentication:
// who the caller is and whether they are asking about themselves. It is
// built fresh per request and never persisted.
type AuthDecision struct {
	Role   Role  `json:"Role"`
	ID     int64 `json:"ID"`
	IsSelf bool  `json:"IsSelf"`
}

// Admin is the profile row behind an Admin account.
type Admin struct {
	ID       int64  `json:"AdminID"`
	Username string `json:"Username"`
	Name     string `json:"Name"`
}

// Pledger is the profile row behind a Pledger (donor) account.
type Pledger struct {
	ID       int64  `json:"PledgerID"`
	Username string `json:"Username"`
	Name     string `json:"Name"`
	Email    string `json:"Email"`
}

// NonProfit is the profile row behind a NonProfit account.
type NonProfit struct {
	ID       int64  `json:"NonProfitID"`
	Username string `json:"Username"`
	Name     string `json:"Name"`
	Mission  string `json:"Mission"`
}
