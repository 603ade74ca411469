package entity

import "time"

// Acquisition is the per-user acquisition axis of a template's status.
type Acquisition string

const (
	AcquisitionFree    Acquisition = "free"    // not acquired, no purchase needed
	AcquisitionSaved   Acquisition = "saved"   // saved to the user's account
	AcquisitionPending Acquisition = "pending" // purchase awaiting admin approval
	AcquisitionBought  Acquisition = "bought"  // purchase approved
)

// Usage is the orthogonal "currently applied to my public profile" axis.
type Usage string

const (
	UsageUnused Usage = "unused"
	UsageUsed   Usage = "used"
)

// TemplateStatus is the per-(user, template) state pair. The two axes are
// independent: a template can be saved and unused, or bought and used. Values
// transition only through the four synchronizer operations, each confirmed by
// the upstream before the new state is committed.
type TemplateStatus struct {
	Slug        string      `json:"slug"`
	Acquisition Acquisition `json:"acquisition"`
	Usage       Usage       `json:"usage"`
	// ConfirmedAt is when the upstream last confirmed this state.
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// NewTemplateStatus returns the initial, unacquired state for a template.
func NewTemplateStatus(slug string) TemplateStatus {
	return TemplateStatus{
		Slug:        slug,
		Acquisition: AcquisitionFree,
		Usage:       UsageUnused,
	}
}

// CanUnsave reports whether an unsave is a legal transition. Bought and
// pending templates cannot be unsaved; the attempt is surfaced as a warning,
// not an error, and no network call is made.
func (s TemplateStatus) CanUnsave() bool {
	return s.Acquisition == AcquisitionSaved || s.Acquisition == AcquisitionFree
}

// CanToggleUsage reports whether used/unused may be changed. Only an acquired
// template (saved or bought) can be applied to the public profile.
func (s TemplateStatus) CanToggleUsage() bool {
	return s.Acquisition == AcquisitionSaved || s.Acquisition == AcquisitionBought
}
