package types

// UnassignedDepartmentID is a sentinel. The department with this id can
// never be deleted; deleting any other department reassigns its members
// here.
const UnassignedDepartmentID = 0

type Department struct {
	ID   int    `json:"department_id" yaml:"department_id"`
	Name string `json:"name" yaml:"name"`
}
