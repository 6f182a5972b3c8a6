// Package accounts exposes the signed-in accounts of the hosting
// application. The dialog only reads them; signing in and out is the host's
// job.
package accounts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EndpointKind distinguishes the hosted service from a self-hosted
// enterprise instance.
type EndpointKind string

const (
	EndpointDotCom     EndpointKind = "dotcom"
	EndpointEnterprise EndpointKind = "enterprise"
)

// Email is one address attached to an account.
type Email struct {
	Address  string `yaml:"address"`
	Verified bool   `yaml:"verified"`
}

// Account is a signed-in user record.
type Account struct {
	Login    string       `yaml:"login"`
	Endpoint EndpointKind `yaml:"endpoint"`
	Emails   []Email      `yaml:"emails"`
}

// PreferredEmail picks the first verified address, falling back to the
// first listed one. Accounts without addresses yield "".
func PreferredEmail(a Account) string {
	for _, e := range a.Emails {
		if e.Verified {
			return e.Address
		}
	}
	if len(a.Emails) > 0 {
		return a.Emails[0].Address
	}
	return ""
}

// Primary returns the account used for identity fallback: a dot-com account
// wins over an enterprise one, otherwise the first signed-in account.
func Primary(list []Account) *Account {
	for i := range list {
		if list[i].Endpoint == EndpointDotCom {
			return &list[i]
		}
	}
	if len(list) > 0 {
		return &list[0]
	}
	return nil
}

// Provider lists the currently signed-in accounts.
type Provider interface {
	List() ([]Account, error)
}

// FileProvider reads accounts from the host application's session file.
type FileProvider struct {
	Path string
}

// List returns the accounts in the session file. A missing file means
// nobody is signed in, which is not an error.
func (p FileProvider) List() ([]Account, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file %s: %w", p.Path, err)
	}
	var doc struct {
		Accounts []Account `yaml:"accounts"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse session file %s: %w", p.Path, err)
	}
	return doc.Accounts, nil
}
