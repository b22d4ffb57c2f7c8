package kontrolluppgift

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// FirstIssue returns the first issue carried by err.
func FirstIssue(err error) (Issue, bool) {
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		return Issue{}, false
	}
	return iss[0], true
}
