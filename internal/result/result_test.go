package result

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	ok := OK([]int{1, 2})
	data, success := ok.Data()
	assert.True(t, success)
	assert.Equal(t, []int{1, 2}, data)
	assert.Equal(t, KindOK, ok.Kind())

	empty := Empty([]int{}, "nothing matched")
	data, success = empty.Data()
	assert.True(t, success)
	assert.Empty(t, data)
	assert.Equal(t, "nothing matched", empty.Message())

	failed := Err[[]int]("Error connecting to database")
	_, success = failed.Data()
	assert.False(t, success)
	assert.Equal(t, KindErr, failed.Kind())

	rejected := Rejected[None]("Insufficient funds")
	assert.False(t, rejected.Success())
	assert.Equal(t, "rejected", rejected.Kind().String())
}

func TestRecast(t *testing.T) {
	r := Recast[string](Rejected[None]("name is required"))
	assert.Equal(t, KindRejected, r.Kind())
	assert.Equal(t, "name is required", r.Message())
}

func TestMarshalJSON(t *testing.T) {
	out, err := json.Marshal(OK(map[string]int{"id": 7}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"id":7}}`, string(out))

	var missing *struct{ ID int }
	out, err = json.Marshal(Empty(missing, "No athlete found with id 3"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":null,"message":"No athlete found with id 3"}`, string(out))

	out, err = json.Marshal(Err[[]int]("Request failed with status 500"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"data":null,"error":"Request failed with status 500"}`, string(out))
}
