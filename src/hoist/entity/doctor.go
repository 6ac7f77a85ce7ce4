package entity

// DoctorReport is the parsed form of the diagnostics payload embedded in a
// tacit-doctor-run client command. The editor renders it as sent.
type DoctorReport struct {
	Title   string         `json:"title"`
	Summary string         `json:"summary,omitempty"`
	Targets []DoctorTarget `json:"targets,omitempty"`
}

// DoctorTarget describes the health of one build target.
type DoctorTarget struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Explanation string `json:"explanation,omitempty"`
}

// DoctorVisibilityParams reports the editor-side visibility of the doctor view.
type DoctorVisibilityParams struct {
	Visible bool `json:"visible"`
}
