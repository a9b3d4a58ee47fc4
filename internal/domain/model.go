package domain

// Section keys as they appear under the export's "Sections" object.
const (
	SectionBackupServer    = "backupServer"
	SectionSecuritySummary = "securitySummary"
	SectionJobInfo         = "jobInfo"
	SectionJobSessions     = "jobSessionSummaryByJob"
	SectionSobr            = "SOBR"
	SectionCapacityExtents = "capExt"
	SectionArchiveExtents  = "archExt"
	SectionExtents         = "extents"
	SectionRepositories    = "repos"

	// SectionLicenses is the top-level pass-through license array.
	SectionLicenses = "Licenses"
)

// KnownSections lists every tabular section the pipeline parses, in parse order.
var KnownSections = []string{
	SectionBackupServer,
	SectionSecuritySummary,
	SectionJobInfo,
	SectionJobSessions,
	SectionSobr,
	SectionCapacityExtents,
	SectionArchiveExtents,
	SectionExtents,
	SectionRepositories,
}

// RawSection is one columnar table from the export.
type RawSection struct {
	Headers []string `json:"Headers"`
	Rows    [][]any  `json:"Rows"`
}

// Record is a single row keyed by header name. Missing cells are present with a nil value.
type Record map[string]any

type BackupServer struct {
	Version string `json:"version"`
	Name    string `json:"name"`
}

type SecuritySummary struct {
	BackupFileEncryptionEnabled   bool `json:"backup_file_encryption_enabled"`
	ConfigBackupEncryptionEnabled bool `json:"config_backup_encryption_enabled"`
}

// Job is a backup job. Pointer fields are nil when the export did not carry a usable value.
type Job struct {
	JobName      string   `json:"job_name"`
	JobType      string   `json:"job_type"`
	Encrypted    bool     `json:"encrypted"`
	RepoName     string   `json:"repo_name"`
	RetainDays   *int     `json:"retain_days"`
	SourceSizeGB *float64 `json:"source_size_gb"`
	GfsEnabled   *bool    `json:"gfs_enabled"`
	GfsDetails   *string  `json:"gfs_details"`
}

type License struct {
	Edition           string  `json:"edition"`
	Status            *string `json:"status"`
	ExpirationDate    *string `json:"expiration_date"`
	LicensedInstances *int    `json:"licensed_instances"`
}

type JobSession struct {
	JobName       string   `json:"job_name"`
	AvgChangeRate *float64 `json:"avg_change_rate"`
	SuccessRate   *float64 `json:"success_rate"`
	SessionCount  *int     `json:"session_count"`
	MaxDataSizeGB *float64 `json:"max_data_size_gb"`
}

// Sobr is a scale-out backup repository.
type Sobr struct {
	Name               string `json:"name"`
	EnableCapacityTier bool   `json:"enable_capacity_tier"`
	ArchiveTierEnabled bool   `json:"archive_tier_enabled"`
	CapacityTierCopy   *bool  `json:"capacity_tier_copy"`
	CapacityTierMove   *bool  `json:"capacity_tier_move"`
	ExtentCount        *int   `json:"extent_count"`
}

type CapacityExtent struct {
	Name              string `json:"name"`
	SobrName          string `json:"sobr_name"`
	EncryptionEnabled bool   `json:"encryption_enabled"`
	ImmutableEnabled  bool   `json:"immutable_enabled"`
	ImmutablePeriod   *int   `json:"immutable_period"`
	CopyModeEnabled   *bool  `json:"copy_mode_enabled"`
	MoveModeEnabled   *bool  `json:"move_mode_enabled"`
	MovePeriodDays    *int   `json:"move_period_days"`
}

type ArchiveExtent struct {
	Name               string `json:"name"`
	SobrName           string `json:"sobr_name"`
	ArchiveTierEnabled bool   `json:"archive_tier_enabled"`
	OffloadPeriod      *int   `json:"offload_period"`
	ImmutableEnabled   *bool  `json:"immutable_enabled"`
}

// PerformanceExtent is a physical extent of a SOBR's performance tier.
type PerformanceExtent struct {
	Name                  string   `json:"name"`
	SobrName              string   `json:"sobr_name"`
	Type                  string   `json:"type"`
	TotalSpaceTB          *float64 `json:"total_space_tb"`
	FreeSpaceTB           *float64 `json:"free_space_tb"`
	ImmutabilitySupported *bool    `json:"immutability_supported"`
}

// Repository is a standard (non scale-out) backup repository.
type Repository struct {
	Name                  string   `json:"name"`
	Type                  string   `json:"type"`
	TotalSpaceTB          *float64 `json:"total_space_tb"`
	FreeSpaceTB           *float64 `json:"free_space_tb"`
	ImmutabilitySupported *bool    `json:"immutability_supported"`
}

// DataErrorLevel is the fixed level tag carried by every DataError.
const DataErrorLevel = "Data Error"

// DataError records one dropped row and the first field that failed.
type DataError struct {
	Level    string `json:"level"`
	Section  string `json:"section"`
	RowIndex int    `json:"row_index"`
	Field    string `json:"field"`
	Reason   string `json:"reason"`
}

// NormalizedDataset is the strictly typed snapshot of one export. Every record
// in every slice is fully populated; rows that failed coercion are only
// represented by their DataError.
type NormalizedDataset struct {
	BackupServers      []BackupServer      `json:"backup_servers"`
	SecuritySummary    []SecuritySummary   `json:"security_summary"`
	Jobs               []Job               `json:"jobs"`
	Licenses           []License           `json:"licenses"`
	JobSessions        []JobSession        `json:"job_sessions"`
	Sobrs              []Sobr              `json:"sobrs"`
	CapacityExtents    []CapacityExtent    `json:"capacity_extents"`
	ArchiveExtents     []ArchiveExtent     `json:"archive_extents"`
	PerformanceExtents []PerformanceExtent `json:"performance_extents"`
	Repositories       []Repository        `json:"repositories"`
	DataErrors         []DataError         `json:"data_errors"`
}

// NewNormalizedDataset returns a dataset with every slice allocated, so JSON
// output carries [] rather than null for empty sections.
func NewNormalizedDataset() *NormalizedDataset {
	return &NormalizedDataset{
		BackupServers:      []BackupServer{},
		SecuritySummary:    []SecuritySummary{},
		Jobs:               []Job{},
		Licenses:           []License{},
		JobSessions:        []JobSession{},
		Sobrs:              []Sobr{},
		CapacityExtents:    []CapacityExtent{},
		ArchiveExtents:     []ArchiveExtent{},
		PerformanceExtents: []PerformanceExtent{},
		Repositories:       []Repository{},
		DataErrors:         []DataError{},
	}
}

// Analysis is the output of one pipeline run.
type Analysis struct {
	Dataset     *NormalizedDataset `json:"dataset"`
	Validations []ValidationResult `json:"validations"`
}
