package common

import "errors"

var (
	ErrMissingName  = errors.New("please provide a name")
	ErrMissingEmail = errors.New("please provide an email")
	ErrMissingPhone = errors.New("please provide a phone number")
	ErrBadPhone     = errors.New("please provide a 10 digit phone number")
	ErrBadAadhar    = errors.New("please provide a 12 digit aadhar number")
	ErrBadPan       = errors.New("please provide a 10 character PAN")
)

// User is a donor or beneficiary record. The full attribute set is a
// pass-through payload; uniqueness and KYC checks are backend-owned.
type User struct {
	Id            int64   `json:"id,omitempty"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Pan           string  `json:"pan,omitempty"`
	AadharCard    string  `json:"aadharCard,omitempty"`
	Reason        string  `json:"reason,omitempty"`
	FundNeeded    float64 `json:"fundNeeded,omitempty"`
	IsBeneficiary bool    `json:"isBeneficiary,omitempty"`
}

// Check enforces required contact fields and fixed-length identifier hints
// before anything goes on the wire; everything else is the backend's problem.
func (u *User) Check() error {
	if u.Name == "" {
		return ErrMissingName
	}
	if u.Email == "" {
		return ErrMissingEmail
	}
	if u.Phone == "" {
		return ErrMissingPhone
	}
	if len(u.Phone) != 10 {
		return ErrBadPhone
	}
	if u.AadharCard != "" && len(u.AadharCard) != 12 {
		return ErrBadAadhar
	}
	if u.Pan != "" && len(u.Pan) != 10 {
		return ErrBadPan
	}
	return nil
}

// Institution carries the full registration payload the review wizard
// collects. It is submitted once, whole; there is no partial-save state.
type Institution struct {
	Id    int64  `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	RegisteredGst string `json:"registeredGst,omitempty"`
	CompanyPan    string `json:"companyPan,omitempty"`

	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
	Country string `json:"country,omitempty"`

	InstitutionType    string `json:"institutionType,omitempty"` // NGO, Hospital, Educational, Government
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Description        string `json:"description,omitempty"`
	Website            string `json:"website,omitempty"`

	ContactPersonName        string `json:"contactPersonName,omitempty"`
	ContactPersonEmail       string `json:"contactPersonEmail,omitempty"`
	ContactPersonPhone       string `json:"contactPersonPhone,omitempty"`
	ContactPersonDesignation string `json:"contactPersonDesignation,omitempty"`

	BankAccountNumber string `json:"bankAccountNumber,omitempty"`
	BankName          string `json:"bankName,omitempty"`
	IfscCode          string `json:"ifscCode,omitempty"`
	AccountHolderName string `json:"accountHolderName,omitempty"`
}

func (inst *Institution) Check() error {
	if inst.Name == "" {
		return ErrMissingName
	}
	if inst.Email == "" {
		return ErrMissingEmail
	}
	if inst.Phone == "" {
		return ErrMissingPhone
	}
	if len(inst.Phone) != 10 {
		return ErrBadPhone
	}
	if inst.CompanyPan != "" && len(inst.CompanyPan) != 10 {
		return ErrBadPan
	}
	return nil
}
