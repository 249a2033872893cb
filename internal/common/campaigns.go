package common

///////// Campaigns /////////

// Campaign mirrors the backend's full campaign record. Lifecycle transitions
// are written back as the whole record, not a patch, so every backend-owned
// field (fundRaised, donorCount, priorityScore) has to round-trip untouched.
type Campaign struct {
	Id            int64 `json:"id,omitempty"` // assigned by the backend at creation
	BeneficiaryId int64 `json:"beneficiaryId"`
	InstitutionId int64 `json:"institutionId"`

	Title            string `json:"title"`
	Description      string `json:"description"`
	MedicalReportUrl string `json:"medicalReportUrl,omitempty"`

	FundRaised    float64 `json:"fundRaised"`
	DonorCount    int     `json:"donorCount"`
	PriorityScore int     `json:"priorityScore"` // ordering hint, semantics owned by the backend

	IsLive      bool `json:"isLive"`
	IsApproved  bool `json:"isApproved"`
	IsFulfilled bool `json:"isFulfilled"`
}

// Pending, Active and Closed are the review-tab predicates. They are computed
// independently and are not a proven partition: a live fulfilled campaign
// matches both the active and closed tabs, and a rejected one matches none.
func (cmp *Campaign) Pending() bool {
	return !cmp.IsApproved && cmp.IsLive
}

func (cmp *Campaign) Active() bool {
	return cmp.IsApproved && cmp.IsLive
}

func (cmp *Campaign) Closed() bool {
	return cmp.IsFulfilled || (!cmp.IsLive && cmp.IsApproved)
}

// Approve, Reject and Close return the full record with only the lifecycle
// flags changed; the caller writes the whole thing back. Each is idempotent at
// the flag level: re-applying a transition yields the same tuple.
func (cmp Campaign) Approve() *Campaign {
	cmp.IsApproved, cmp.IsLive = true, true
	return &cmp
}

func (cmp Campaign) Reject() *Campaign {
	cmp.IsApproved, cmp.IsLive = false, false
	return &cmp
}

func (cmp Campaign) Close() *Campaign {
	cmp.IsLive, cmp.IsFulfilled = false, true
	return &cmp
}

// Tabs is the institution review split. A campaign may appear under more than
// one tab; the flag algebra does not rule it out and the backend owns the
// flags.
type Tabs struct {
	Pending  []*Campaign `json:"pending"`
	Approved []*Campaign `json:"approved"`
	Closed   []*Campaign `json:"closed"`
}

func SplitTabs(cmps []*Campaign) *Tabs {
	t := &Tabs{
		Pending:  []*Campaign{},
		Approved: []*Campaign{},
		Closed:   []*Campaign{},
	}
	for _, cmp := range cmps {
		if cmp.Pending() {
			t.Pending = append(t.Pending, cmp)
		}
		if cmp.Active() {
			t.Approved = append(t.Approved, cmp)
		}
		if cmp.Closed() {
			t.Closed = append(t.Closed, cmp)
		}
	}
	return t
}

func TotalRaised(cmps []*Campaign) (total float64) {
	for _, cmp := range cmps {
		total += cmp.FundRaised
	}
	return
}

func TotalDonors(cmps []*Campaign) (total int) {
	for _, cmp := range cmps {
		total += cmp.DonorCount
	}
	return
}
