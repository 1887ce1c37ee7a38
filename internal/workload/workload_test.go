package workload

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	assert.Equal(t, []int{4, 3, 2, 1, 0}, Generate(Spec{N: 5, Order: Descending}))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, Generate(Spec{N: 5, Order: Ascending}))
	assert.Empty(t, Generate(Spec{N: 0}))

	r1 := Generate(Spec{N: 1000, Order: Random, Seed: 7})
	r2 := Generate(Spec{N: 1000, Order: Random, Seed: 7})
	r3 := Generate(Spec{N: 1000, Order: Random, Seed: 8})
	assert.Equal(t, r1, r2, "same seed, same permutation")
	assert.NotEqual(t, r1, r3)
	assert.Equal(t, Generate(Spec{N: 1000, Order: Ascending}), slices.Sorted(slices.Values(r1)),
		"random order is a permutation")
}

func TestDefaultNMatchesBenchmarkInput(t *testing.T) {
	v := Generate(Spec{N: DefaultN})
	assert.Equal(t, 400000, v[0])
	assert.Equal(t, 0, v[len(v)-1])
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    Order
		wantErr bool
	}{
		{"descending", Descending, false},
		{"Ascending", Ascending, false},
		{"RANDOM", Random, false},
		{"sideways", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrder(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, must(ParseOrder(got.String())))
		})
	}
	assert.Equal(t, "Order(9)", Order(9).String())
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestSpecValidate(t *testing.T) {
	assert.NoError(t, Spec{N: 10}.Validate())
	assert.NoError(t, Spec{N: 0, Order: Random}.Validate())
	assert.Error(t, Spec{N: -1}.Validate())
	assert.Error(t, Spec{N: 1, Order: Order(3)}.Validate())
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{
		"freelist-sort", "freelist-sort-values", "list-sort", "freelist-churn", "queue-churn",
	}, Names())

	for _, name := range Names() {
		w, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, w.Name)
		assert.NotEmpty(t, w.Description)
	}

	_, err := Lookup("vector-sort")
	assert.ErrorIs(t, err, ErrUnknownWorkload)
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"
	assert.Equal(t, "freelist-sort", All()[0].Name)
}

func TestWorkloadsVerify(t *testing.T) {
	specs := []Spec{
		{N: 0},
		{N: 1},
		{N: 100, Order: Descending},
		{N: ChurnWindow + 500, Order: Random, Seed: 3},
		{N: 5000, Order: Ascending},
	}

	for _, w := range All() {
		for _, s := range specs {
			t.Run(w.Name+"/"+s.Order.String(), func(t *testing.T) {
				verify := w.Run(Generate(s))
				assert.NoError(t, verify(), "n=%d", s.N)
			})
		}
	}
}

func TestVerifySorted(t *testing.T) {
	assert.NoError(t, verifySorted(slices.Values([]int{})))
	assert.NoError(t, verifySorted(slices.Values([]int{1, 1, 2})))

	err := verifySorted(slices.Values([]int{1, 3, 2}))
	assert.ErrorIs(t, err, ErrVerify)
	assert.EqualError(t, err, "workload: verification failed: 2 follows 3 at position 2")
}

func TestVerifyChurnSum(t *testing.T) {
	values := Generate(Spec{N: ChurnWindow + 3, Order: Ascending})
	assert.NoError(t, verifyChurnSum(values, 0+1+2))
	assert.ErrorIs(t, verifyChurnSum(values, 4), ErrVerify)
}
