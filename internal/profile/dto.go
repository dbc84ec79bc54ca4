package profile

// SearchResult is one row of /search-emp: profile columns joined with the
// person's display name from the identity table.
type SearchResult struct {
	ProfileID     uint    `json:"profile_id"`
	ProfileTitle  *string `json:"profile_title"`
	CommonName    string  `json:"common_name"`
	PrimaryPhone  *string `json:"primary_phone"`
	Email1        *string `json:"email1"`
	City          *string `json:"city"`
	Country       *string `json:"country"`
	Designation   *string `json:"designation"`
	Qualification *string `json:"qualification"`
}

// ProfileData is the /profile-data response.
type ProfileData struct {
	UserID        uint    `json:"user_id"`
	CommonName    string  `json:"common_name"`
	ProfileID     uint    `json:"profile_id"`
	ProfileTitle  *string `json:"profile_title"`
	PrimaryPhone  *string `json:"primary_phone"`
	Designation   *string `json:"designation"`
	Email         *string `json:"email"`
	Qualification *string `json:"qualification"`
}

// ImportRow is one parsed spreadsheet row, blanks already normalized to nil.
type ImportRow struct {
	ProfileTitle   *string
	PrimaryPhone   *string
	SecondaryPhone *string
	Email1         *string
	Email2         *string
	Address1       *string
	City           *string
	Pincode        *string
	Country        *string
}

// ImportReport summarizes one bulk import batch.
type ImportReport struct {
	Inserted int
	Skipped  int
}
