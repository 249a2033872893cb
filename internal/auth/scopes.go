package auth

type Scope string

const (
	AllScopes Scope = `*` // special catch-all case for matching

	InvalidScope     Scope = ""
	UserScope        Scope = `user` // donor or beneficiary
	InstitutionScope Scope = `institution`
)

func (s Scope) Valid() bool {
	switch s {
	case UserScope, InstitutionScope:
		return true
	}
	return false
}

func (s Scope) IsOneOf(os ...Scope) bool {
	for _, o := range os {
		if s == o {
			return true
		}
	}
	return false
}

type ScopeMap map[Scope]struct{ Get, Put, Post, Delete bool }

func (sm ScopeMap) HasAccess(s Scope, method string) bool {
	acc, ok := sm[s]
	if !ok {
		acc, ok = sm[AllScopes]
	}
	if !ok {
		return false
	}
	switch method {
	case "GET":
		return acc.Get
	case "PUT":
		return acc.Put
	case "POST":
		return acc.Post
	case "DELETE":
		return acc.Delete
	}
	return false
}
