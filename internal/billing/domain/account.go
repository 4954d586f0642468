package domain

import (
	"time"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
)

type Account struct {
	Identifier   shareddomain.ID
	UserName     string
	FirstName    string
	LastName     string
	EmailAddress string
	PhoneNumber  string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Country      string
	ZipCode      string
	CreatedAt    time.Time
}

func (a Account) Ref() AccountRef {
	return AccountRef{Identifier: a.Identifier, UserName: a.UserName}
}

func (a Account) Record() shareddomain.Record {
	return shareddomain.Record{
		shareddomain.FieldIdentifier: a.Identifier.String(),
		"userName":                   a.UserName,
		"firstName":                  a.FirstName,
		"lastName":                   a.LastName,
		"emailAddress":               a.EmailAddress,
		"phoneNumber":                a.PhoneNumber,
		"addressLine1":               a.AddressLine1,
		"addressLine2":               a.AddressLine2,
		"city":                       a.City,
		"state":                      a.State,
		"country":                    a.Country,
		"zipCode":                    a.ZipCode,
		shareddomain.FieldCreatedAt:  a.CreatedAt,
	}
}

type AccountRef struct {
	Identifier shareddomain.ID
	UserName   string
}

func (r AccountRef) Record() map[string]any {
	return map[string]any{shareddomain.FieldIdentifier: r.Identifier.String(), "userName": r.UserName}
}
