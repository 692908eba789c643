package transfer

// LinkedinUserInfo is the response of the LinkedIn OIDC userinfo endpoint,
// available with the "profile openid email" scopes.
type LinkedinUserInfo struct {
	Sub        string `json:"sub"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
	Email      string `json:"email"`
}
