package verify

// BindArgs partitions declared checks into constructor arguments and
// remaining assertions. Every check whose name matches a constructor
// parameter is consumed to build the instance; the rest stay checks. The
// subject name is supplied positionally by the dispatcher and is never part
// of this partition.
func BindArgs(params []string, checks []DeclaredCheck) (map[string]any, []DeclaredCheck) {
	paramSet := make(map[string]bool, len(params))
	for _, p := range params {
		paramSet[p] = true
	}

	args := make(map[string]any)
	remaining := make([]DeclaredCheck, 0, len(checks))
	for _, chk := range checks {
		if paramSet[chk.Name] {
			args[chk.Name] = chk.Expectation
			continue
		}
		remaining = append(remaining, chk)
	}
	return args, remaining
}

// filterReserved drops checks whose names carry the reserved prefix. They
// belong to the calling layer and never reach binding or evaluation.
func filterReserved(checks []DeclaredCheck) []DeclaredCheck {
	valid := make([]DeclaredCheck, 0, len(checks))
	for _, chk := range checks {
		if len(chk.Name) > 0 && chk.Name[:1] == ReservedPrefix {
			continue
		}
		valid = append(valid, chk)
	}
	return valid
}
