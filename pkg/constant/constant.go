package constant

const (
	DefaultUserRole  = "user"
	DefaultTokenType = "Bearer"
)

// Audit event actions.
const (
	ActionRegister     = "register"
	ActionLoginSuccess = "login_success"
	ActionLoginFailure = "login_failure"
)
