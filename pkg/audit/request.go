package audit

// AuditRequest carries the parameters of a single audit command request.
//
// Every field is optional and independent: absence is represented by a nil
// pointer (or a nil/empty slice for the service lists), never by a sentinel
// value. A nil field omits the corresponding flag from the generated command.
type AuditRequest struct {
	// FullReport only switches an advisory sentence in the returned text;
	// it has no effect on the generated flags.
	FullReport *bool `json:"full_report,omitempty"`

	// MaxWorkers becomes --max-workers. Any value is stringified as-is;
	// ScoutSuite itself rejects out-of-range values.
	MaxWorkers *int `json:"max_workers,omitempty"`

	// Services and SkipServices expand positionally, one token per element.
	// An empty slice is treated the same as absent.
	Services     []string `json:"services,omitempty"`
	SkipServices []string `json:"skip_services,omitempty"`

	// Profile names a shared credential profile.
	Profile *string `json:"profile,omitempty"`

	// UseAccessKeys toggles --access-keys on presence alone; the value is
	// not inspected.
	UseAccessKeys   *bool   `json:"use_access_keys,omitempty"`
	AccessKeyID     *string `json:"access_key_id,omitempty"`
	SecretAccessKey *string `json:"secret_access_key,omitempty"`
	SessionToken    *string `json:"session_token,omitempty"`

	// Regions and ExcludeRegions are caller-supplied comma-joined lists,
	// passed through verbatim.
	Regions        *string `json:"regions,omitempty"`
	ExcludeRegions *string `json:"exclude_regions,omitempty"`

	// IPRanges is a filesystem path on the caller's machine.
	IPRanges        *string `json:"ip_ranges,omitempty"`
	IPRangesNameKey *string `json:"ip_ranges_name_key,omitempty"`
}
