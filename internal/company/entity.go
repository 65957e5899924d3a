package company

// Company is a row in the companies table, referenced by jobs.
type Company struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	Email       *string `db:"email" json:"email"`
	Website     *string `db:"website" json:"website"`
	Logo        *string `db:"logo" json:"logo"`
	Status      string  `db:"status" json:"status"`
}
