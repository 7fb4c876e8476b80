package verify

import "fmt"

// Report aggregates the assertion outcomes for one resource instance.
// Success is the AND over all recorded assertions, vacuously true when no
// checks were declared. Message order matches evaluation order.
type Report struct {
	Success bool     `json:"success" yaml:"success"`
	Passed  []string `json:"passed" yaml:"passed"`
	Failed  []string `json:"failed" yaml:"failed"`
}

// newReport returns an empty, vacuously successful report.
func newReport() Report {
	return Report{
		Success: true,
		Passed:  []string{},
		Failed:  []string{},
	}
}

// failedReport returns the terminal report for a fatal resolution or
// construction failure: overall failure with no partial messages.
func failedReport() Report {
	return Report{
		Success: false,
		Passed:  []string{},
		Failed:  []string{},
	}
}

func passMessage(resourceType, subject, member, expectation string, actual any) string {
	return fmt.Sprintf("Assertion passed:  %s %s %s %s. Actual result: %v",
		resourceType, subject, member, expectation, actual)
}

func failMessage(resourceType, subject, member, expectation string, actual any) string {
	return fmt.Sprintf("Assertion failed: %s %s %s %s. Actual result: %v",
		resourceType, subject, member, expectation, actual)
}

func errorMessage(resourceType, subject, member, expectation string, err error) string {
	return fmt.Sprintf("Assertion failed: %s %s %s %s. Error: %v",
		resourceType, subject, member, expectation, err)
}
