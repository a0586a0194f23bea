package config

// TokenConf carries the JWT signing material. Secrets only come from the
// injected configuration, there is no built-in default.
type TokenConf struct {
	AccessTokenExpiryHour  int
	RefreshTokenExpiryHour int
	AccessTokenSecret      string
	RefreshTokenSecret     string
}

func NewTokenConf() *TokenConf {
	conf := GetConfig()
	if conf.Auth.AccessTokenSecret == "" || conf.Auth.RefreshTokenSecret == "" {
		panic("auth token secrets are not configured")
	}

	accessExpiry := conf.Auth.AccessTokenExpiryHour
	if accessExpiry == 0 {
		accessExpiry = 1
	}
	refreshExpiry := conf.Auth.RefreshTokenExpiryHour
	if refreshExpiry == 0 {
		refreshExpiry = 168
	}

	return &TokenConf{
		AccessTokenExpiryHour:  accessExpiry,
		RefreshTokenExpiryHour: refreshExpiry,
		AccessTokenSecret:      conf.Auth.AccessTokenSecret,
		RefreshTokenSecret:     conf.Auth.RefreshTokenSecret,
	}
}
