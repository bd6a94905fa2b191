package domain

import "time"

// Fingerprint identifies the environment a report was produced in. A cached
// report is only reused when the fingerprint still matches.
type Fingerprint struct {
	GoVersion  string `json:"go_version"`
	GoModHash  string `json:"go_mod_hash"`
	CommitHash string `json:"commit_hash,omitempty"`
	ConfigHash string `json:"config_hash"`
}

// CacheEntry is one stored report. Files and SourceHash describe the package
// sources the report was built from, so edits that no fingerprint field
// sees still make the entry stale.
type CacheEntry struct {
	Key         string      `json:"key"`
	Path        string      `json:"path"`
	Name        string      `json:"name"`
	Fingerprint Fingerprint `json:"fingerprint"`
	Files       []string    `json:"files"`
	SourceHash  string      `json:"source_hash"`
	Report      *Report     `json:"report"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (e *CacheEntry) IsInvalidated(fp Fingerprint) bool {
	return e.Fingerprint != fp
}
