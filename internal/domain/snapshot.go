package domain

// SnapshotVersion is stamped on every export. Import dispatches on it
// explicitly so a future schema change fails loudly instead of corrupting
// state.
const SnapshotVersion = "1.0"

// Snapshot is the export/import backup document: all collections plus the
// settings singleton. On import, a nil collection or nil settings means "no
// change to that part"; only a completely unparseable document rejects the
// whole import.
type Snapshot struct {
	Clients      []Client      `json:"clients"`
	Services     []Service     `json:"services"`
	Appointments []Appointment `json:"appointments"`
	Settings     *Settings     `json:"settings"`
	ExportDate   string        `json:"exportDate"`
	Version      string        `json:"version"`
}
