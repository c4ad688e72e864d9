package service

// CodeGenerator produces candidate employee codes. Candidates are drawn
// uniformly from "100000" through "999999"; codes with a leading zero are
// intentionally never produced. Uniqueness is not the generator's concern;
// the registration flow checks candidates against the store and the store's
// unique constraint settles races.
type CodeGenerator interface {
	// Candidate returns one 6-digit candidate code.
	Candidate() string
}
