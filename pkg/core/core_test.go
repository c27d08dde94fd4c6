package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tinyclj/pkg/core"
	"tinyclj/pkg/eval"
	"tinyclj/pkg/namespace"
	"tinyclj/pkg/printer"
	"tinyclj/pkg/symbol"
	"tinyclj/pkg/value"
)

func newFullState(t *testing.T) *eval.State {
	t.Helper()
	st := eval.NewState(symbol.NewTable(), namespace.NewRegistry(), "")
	core.Install(st)
	errs := core.LoadCore(st)
	require.Empty(t, errs, "bootstrap core source should load cleanly")
	return st
}

func eval1(t *testing.T, st *eval.State, src string) value.Value {
	t.Helper()
	v, err := st.EvalString(src)
	require.NoError(t, err, "eval(%q)", src)
	return v
}

func TestArithmeticEndToEnd(t *testing.T) {
	st := newFullState(t)
	v := eval1(t, st, "(+ 1 2 3)")
	require.Equal(t, int64(6), v.I)
}

func TestFactorial(t *testing.T) {
	st := newFullState(t)
	eval1(t, st, `
		(defn factorial [n]
		  (loop [i n acc 1]
		    (if (<= i 1)
		      acc
		      (recur (- i 1) (* acc i)))))`)
	v := eval1(t, st, "(factorial 10)")
	require.Equal(t, int64(3628800), v.I)
}

func TestLoopRecurLargeSum(t *testing.T) {
	st := newFullState(t)
	v := eval1(t, st, `
		(loop [i 0 acc 0]
		  (if (= i 1000)
		    acc
		    (recur (+ i 1) (+ acc i))))`)
	require.Equal(t, int64(499500), v.I)
}

func TestTryExInfoExData(t *testing.T) {
	st := newFullState(t)
	eval1(t, st, `
		(def caught
		  (try
		    (throw (ex-info "bad thing" {:code 42}))
		    (catch :default e (ex-data e))))`)
	v := eval1(t, st, "(get caught :code)")
	require.Equal(t, int64(42), v.I)
}

func TestExMessage(t *testing.T) {
	st := newFullState(t)
	v := eval1(t, st, `
		(try
		  (throw (ex-info "oops" {}))
		  (catch :default e (ex-message e)))`)
	require.True(t, v.IsString())
	require.Equal(t, "oops", string(v.Obj.Bytes))
}

func TestAssocConjAndGet(t *testing.T) {
	st := newFullState(t)
	v := eval1(t, st, `(get (assoc {:a 1} :b 2) :b)`)
	require.Equal(t, int64(2), v.I)
	v = eval1(t, st, `(count (conj [1 2] 3))`)
	require.Equal(t, int64(3), v.I)
}

func TestMapFilterReduce(t *testing.T) {
	st := newFullState(t)
	eval1(t, st, "(defn double [x] (* x 2))")
	eval1(t, st, "(defn even-pred [x] (= (mod x 2) 0))")
	v := eval1(t, st, "(reduce + 0 (map double [1 2 3]))")
	require.Equal(t, int64(12), v.I)
	v = eval1(t, st, "(count (filter even-pred [1 2 3 4 5]))")
	require.Equal(t, int64(2), v.I)
}

func TestIdentitySecondLastFromBootstrap(t *testing.T) {
	st := newFullState(t)
	require.Equal(t, int64(7), eval1(t, st, "(identity 7)").I)
	require.Equal(t, int64(2), eval1(t, st, "(second [1 2 3])").I)
	require.Equal(t, int64(3), eval1(t, st, "(last [1 2 3])").I)
}

func TestEveryAndSomePredicates(t *testing.T) {
	st := newFullState(t)
	eval1(t, st, "(defn pos-pred [x] (pos? x))")
	require.True(t, eval1(t, st, "(every? pos-pred [1 2 3])").Truthy())
	require.False(t, eval1(t, st, "(every? pos-pred [1 -2 3])").Truthy())
	require.True(t, eval1(t, st, "(some pos-pred [-1 -2 3])").Truthy())
}

func TestConstantly(t *testing.T) {
	st := newFullState(t)
	eval1(t, st, "(def always5 (constantly 5))")
	require.Equal(t, int64(5), eval1(t, st, "(always5 1 2 3)").I)
}

func TestByteArrayRoundTrip(t *testing.T) {
	st := newFullState(t)
	eval1(t, st, "(def b (byte-array 1 2 3))")
	require.Equal(t, int64(2), eval1(t, st, "(aget b 1)").I)
	require.True(t, eval1(t, st, "(byte-array? b)").Truthy())
}

func TestStr(t *testing.T) {
	st := newFullState(t)
	v := eval1(t, st, `(str "a" 1 "b")`)
	require.True(t, v.IsString())
	require.Equal(t, "a1b", string(v.Obj.Bytes))
}

func TestDivisionByZeroRaisesCoreException(t *testing.T) {
	st := newFullState(t)
	_, err := st.EvalString("(/ 1 0)")
	require.Error(t, err)
}

func TestPredicates(t *testing.T) {
	st := newFullState(t)
	require.True(t, eval1(t, st, "(number? 1)").Truthy())
	require.True(t, eval1(t, st, "(vector? [1 2])").Truthy())
	require.False(t, eval1(t, st, "(vector? (list 1 2))").Truthy())
	require.True(t, eval1(t, st, "(nil? nil)").Truthy())
}

func TestPrintedOutputMatchesReaderInput(t *testing.T) {
	st := newFullState(t)
	v := eval1(t, st, "(assoc {} :a 1)")
	require.Equal(t, "{:a 1}", printer.Print(v))
}
