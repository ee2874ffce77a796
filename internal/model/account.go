package model

// RegisterParams contains input of a plain registration.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
}

// ProvisionParams contains input of a full account creation.
type ProvisionParams struct {
	Email    string
	FName    string
	LName    string
	Password string
	Name     string
	Role     string
}

// AccountUpdate contains self-service changes. Empty fields are not changed.
type AccountUpdate struct {
	Name    string
	Email   string
	Picture *Upload
}

// UserUpdate contains administrative changes of an identity and its profile.
// Nil fields are not changed.
type UserUpdate struct {
	Name  *string
	Email *string
	FName *string
	LName *string
}
