package domain

// HelpDeskEmployee models an internal support operator.
type HelpDeskEmployee struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Specializations []string
	Available       bool

	// Workload counts requests currently assigned to the employee in
	// status in-progress. The store keeps this equal to the actual count.
	Workload int
}

// Clone returns a copy with no shared slices.
func (e *HelpDeskEmployee) Clone() *HelpDeskEmployee {
	if e == nil {
		return nil
	}
	out := *e
	if e.Specializations != nil {
		out.Specializations = make([]string, len(e.Specializations))
		copy(out.Specializations, e.Specializations)
	}
	return &out
}
