package domain

type Verdict string

const (
	VerdictAccepted     Verdict = "Accepted"
	VerdictWrongAnswer  Verdict = "Wrong Answer"
	VerdictRuntimeError Verdict = "Runtime Error"
)

type CaseResult struct {
	ProblemID int
	Case      int
	Verdict   Verdict
	Detail    string
}

func NewCaseResult(problemID, sampleCase int, verdict Verdict, detail string) CaseResult {
	return CaseResult{
		ProblemID: problemID,
		Case:      sampleCase,
		Verdict:   verdict,
		Detail:    detail,
	}
}

type Report struct {
	Results  []CaseResult
	Accepted int
	Total    int
}

func NewReport(results []CaseResult) *Report {
	accepted := 0

	for _, result := range results {
		if result.Verdict == VerdictAccepted {
			accepted++
		}
	}

	return &Report{
		Results:  results,
		Accepted: accepted,
		Total:    len(results),
	}
}

func (r *Report) Passed() bool {
	return r.Accepted == r.Total
}
