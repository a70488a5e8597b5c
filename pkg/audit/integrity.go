package audit

// ClassifyIntegrity maps one raw tool invocation outcome onto a PASSED/FAILED
// result for the given file. It is a pure function so the decision rule can
// be tested without spawning processes.
//
// The strict-decode template logs only error-severity diagnostics and
// discards all decoded output, so an empty diagnostic stream means the full
// decode surfaced nothing and the file passes. Any diagnostic text fails the
// file with that text attached. An invocation fault (invokeErr non-nil) is
// itself a FAILED outcome carrying the fault's description; it never aborts
// the batch.
func ClassifyIntegrity(file AudioFileRef, outcome ProcessOutcome, invokeErr error) IntegrityResult {
	if invokeErr != nil {
		return IntegrityResult{File: file, Status: StatusFailed, Diagnostic: invokeErr.Error()}
	}
	if outcome.Stderr != "" {
		return IntegrityResult{File: file, Status: StatusFailed, Diagnostic: outcome.Stderr}
	}
	return IntegrityResult{File: file, Status: StatusPassed}
}
