// Package domain holds the vocabulary shared by the API and store layers:
// the role and status literals the frontend persists and the cap applied to
// popularity queries.
package domain

const (
	// RoleInstructor is the role value the registration frontend stores for
	// instructors. The misspelling is what the data actually contains, so
	// queries must match it exactly; normalizing it here would silently empty
	// the instructor listings.
	RoleInstructor = "instractor"

	// StatusApproved marks a class an admin has approved for enrollment.
	StatusApproved = "approve"
)

// PopularLimit caps the popularity listings (classes and instructors).
const PopularLimit = 6
