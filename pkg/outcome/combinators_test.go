package outcome

import (
	"errors"
	"strconv"
	"testing"
)

func TestMap_Identity(t *testing.T) {
	t.Parallel()
	orig := SuccessMsg(42, "loaded")

	mapped := Map(orig, func(v int) int { return v })

	if !mapped.IsSuccess() || mapped.Data() != orig.Data() || mapped.Message() != orig.Message() {
		t.Fatalf("identity map must keep data and message, got: data=%v, msg=%q", mapped.Data(), mapped.Message())
	}
}

func TestMap_TransformsData(t *testing.T) {
	t.Parallel()
	res := Map(Success(21), func(v int) string { return strconv.Itoa(v * 2) })

	if !res.IsSuccess() || res.Data() != "42" {
		t.Fatalf("expected success '42', got: success=%v, data=%q", res.IsSuccess(), res.Data())
	}
}

func TestMap_FailurePassesThroughUntouched(t *testing.T) {
	t.Parallel()
	orig := NotFound[int]("missing")
	calls := 0

	mapped := Map(orig, func(v int) int { calls++; return v })

	if calls != 0 {
		t.Fatalf("fn must never run on a failure, ran %d times", calls)
	}
	if mapped.IsSuccess() || mapped.Err() != orig.Err() {
		t.Fatalf("failure must pass through with its error untouched")
	}
}

func TestFlatMap_ReturnsInnerResultVerbatim(t *testing.T) {
	t.Parallel()
	inner := SuccessMsg("u42", "resolved")

	res := FlatMap(Success(42), func(v int) Result[string] { return inner })

	if res != inner {
		t.Fatalf("flatMap must return fn's result verbatim")
	}
}

func TestFlatMap_ShortCircuitsOnFailure(t *testing.T) {
	t.Parallel()
	orig := Unauthorized[int]("no token")
	calls := 0

	res := FlatMap(orig, func(v int) Result[string] {
		calls++
		return Success("never")
	})

	if calls != 0 {
		t.Fatalf("fn must never run on a failure, ran %d times", calls)
	}
	if res.IsSuccess() || res.Err() != orig.Err() {
		t.Fatalf("expected the original failure recast, got: %+v", res.Err())
	}
}

func TestValidate_PassingPredicateReturnsSelf(t *testing.T) {
	t.Parallel()
	orig := SuccessMsg(10, "ok")

	res := orig.Validate(func(v int) bool { return v > 0 }, "must be positive")

	if res != orig {
		t.Fatalf("a passing validation must return the result unchanged")
	}
}

func TestValidate_FailingPredicateYieldsValidationFailure(t *testing.T) {
	t.Parallel()
	res := Success(-1).Validate(func(v int) bool { return v > 0 }, "must be positive")

	if res.IsSuccess() || res.Err().Category() != CategoryValidation || res.Err().Message() != "must be positive" {
		t.Fatalf("expected validation failure 'must be positive', got: %+v", res.Err())
	}
}

func TestValidate_ChainStopsAtFirstFailingPredicate(t *testing.T) {
	t.Parallel()
	probed := 0

	res := Success(5).
		Validate(func(v int) bool { return false }, "m1").
		Validate(func(v int) bool { probed++; return true }, "m2")

	if probed != 0 {
		t.Fatalf("later predicates must never run after a failure, ran %d times", probed)
	}
	if res.IsSuccess() || res.Err().Message() != "m1" {
		t.Fatalf("the first failing predicate's message must win, got: %+v", res.Err())
	}
}

func TestValidate_NeverEvaluatesPredicateOnFailure(t *testing.T) {
	t.Parallel()
	probed := 0

	res := FailMsg[*int]("upstream").
		Validate(func(v *int) bool { probed++; return *v > 0 }, "m")

	if probed != 0 {
		t.Fatalf("predicate ran %d times on a failure; a chained predicate may dereference data", probed)
	}
	if res.Err().Message() != "upstream" {
		t.Fatalf("expected the upstream failure, got: %+v", res.Err())
	}
}

func TestFilter_IsValidate(t *testing.T) {
	t.Parallel()
	res := Success(3).Filter(func(v int) bool { return v%2 == 0 }, "must be even")

	if res.IsSuccess() || res.Err().Category() != CategoryValidation || res.Err().Message() != "must be even" {
		t.Fatalf("expected validation failure 'must be even', got: %+v", res.Err())
	}
}

func TestTry_Success(t *testing.T) {
	t.Parallel()
	res := Try(Success("42"), func(s string) (int, error) { return strconv.Atoi(s) })

	if !res.IsSuccess() || res.Data() != 42 {
		t.Fatalf("expected success 42, got: success=%v, data=%v, err=%v", res.IsSuccess(), res.Data(), res.Err())
	}
}

func TestTry_ErrorBecomesFailure(t *testing.T) {
	t.Parallel()
	res := Try(Success(1), func(int) (int, error) { return 0, errors.New("repo broke") })

	if res.IsSuccess() || res.Err().Category() != CategoryGeneric || res.Err().Message() != "repo broke" {
		t.Fatalf("expected generic failure 'repo broke', got: %+v", res.Err())
	}
}

func TestTry_TypedErrorKeepsCategory(t *testing.T) {
	t.Parallel()
	res := Try(Success(1), func(int) (int, error) { return 0, NewError(CategoryNotFound, "row missing") })

	if res.IsSuccess() || res.Err().Category() != CategoryNotFound {
		t.Fatalf("expected not_found, got: %+v", res.Err())
	}
}

func TestOnSuccessOnFailure_RunOnMatchingSideOnly(t *testing.T) {
	t.Parallel()
	var gotData int
	var gotErr Error
	successSide, failureSide := 0, 0

	ok := Success(7).
		OnSuccess(func(v int) { successSide++; gotData = v }).
		OnFailure(func(e Error) { failureSide++ })

	if successSide != 1 || failureSide != 0 || gotData != 7 {
		t.Fatalf("success side: ran %d/%d times, data=%v", successSide, failureSide, gotData)
	}
	if !ok.IsSuccess() || ok.Data() != 7 {
		t.Fatalf("actions must not alter the result")
	}

	successSide, failureSide = 0, 0
	bad := Forbidden[int]("nope").
		OnSuccess(func(v int) { successSide++ }).
		OnFailure(func(e Error) { failureSide++; gotErr = e })

	if successSide != 0 || failureSide != 1 || gotErr.Message() != "nope" {
		t.Fatalf("failure side: ran %d/%d times, err=%+v", successSide, failureSide, gotErr)
	}
	if bad.IsSuccess() || bad.Err().Category() != CategoryForbidden {
		t.Fatalf("actions must not alter the result")
	}
}

func TestOnSuccess_PanicsPropagate(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("a panic inside the action must reach the caller")
		}
	}()

	Success(1).OnSuccess(func(int) { panic("subscriber blew up") })
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	alt := Success(99)

	if got := Success(1).OrElse(alt); got.Data() != 1 {
		t.Fatalf("success must ignore the alternative, got: %v", got.Data())
	}
	if got := FailMsg[int]("x").OrElse(alt); got != alt {
		t.Fatalf("failure must return the alternative verbatim")
	}
}

func TestOrElseGet(t *testing.T) {
	t.Parallel()
	supplied := 0
	supply := func() int { supplied++; return 99 }

	if got := Success(1).OrElseGet(supply); got != 1 || supplied != 0 {
		t.Fatalf("success must not invoke the supplier, got: %v, calls=%d", got, supplied)
	}
	if got := FailMsg[int]("x").OrElseGet(supply); got != 99 || supplied != 1 {
		t.Fatalf("failure must return the supplied value, got: %v, calls=%d", got, supplied)
	}
}
