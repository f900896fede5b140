package outcome

// Match runs onFailure with the failures when r is a failure, otherwise
// onSuccess with the outcomes. Exactly one arm runs.
func Match[R any](r *Result, onSuccess func(List) R, onFailure func([]FailureDetail) R) R {
	if r.IsFailure() {
		return onFailure(r.Failures())
	}
	return onSuccess(r.Outcomes())
}

// MatchValue is Match for a ResultOf. The success arm also receives the value.
func MatchValue[T, R any](r *ResultOf[T], onSuccess func(T, List) R, onFailure func([]FailureDetail) R) R {
	if r.IsFailure() {
		return onFailure(r.Failures())
	}
	return onSuccess(r.value, r.Outcomes())
}

// MatchValueWith is MatchValue where the failure arm also receives the
// carried value, for partial-data-with-errors flows.
func MatchValueWith[T, R any](r *ResultOf[T], onSuccess func(T, List) R, onFailure func(T, []FailureDetail) R) R {
	if r.IsFailure() {
		return onFailure(r.value, r.Failures())
	}
	return onSuccess(r.value, r.Outcomes())
}
