package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_SetIsFirstWriteWins(t *testing.T) {
	r := NewRecord()
	assert.True(t, r.Set("station_login", "ADMIN"))
	assert.False(t, r.Set("station_login", "OTHER"))

	v, ok := r.Get("station_login")
	assert.True(t, ok)
	assert.Equal(t, "ADMIN", v)
}

func TestRecord_MarshalJSON_PreservesInsertionOrder(t *testing.T) {
	r := NewRecord()
	r.Set("timestamp", "2023-10-10 05:10:08")
	r.Set("command_code", "Discharge Item")
	r.Set("item_id", "31221112079020")

	b, err := json.Marshal(r)
	assert.NoError(t, err)
	assert.Equal(t, `{"timestamp":"2023-10-10 05:10:08","command_code":"Discharge Item","item_id":"31221112079020"}`, string(b))
}

func TestRecord_MarshalJSON_NeverEmitsNull(t *testing.T) {
	r := NewRecord()
	b, err := json.Marshal(r)
	assert.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestRecord_HasAndLen(t *testing.T) {
	r := NewRecord()
	assert.False(t, r.Has("user_pin"))
	assert.Equal(t, 0, r.Len())

	r.Set("user_pin", "xxxxx")
	assert.True(t, r.Has("user_pin"))
	assert.Equal(t, 1, r.Len())
}
